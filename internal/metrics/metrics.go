// Package metrics records workflow outcomes.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder receives one observation per workflow operation.
type Recorder interface {
	Observe(ctx context.Context, op string, success bool, duration time.Duration)
	Warning(ctx context.Context, op, kind string)
	Rejected(ctx context.Context, op, kind string)
}

type Nop struct{}

func (Nop) Observe(context.Context, string, bool, time.Duration) {}
func (Nop) Warning(context.Context, string, string)              {}
func (Nop) Rejected(context.Context, string, string)             {}

// Prometheus keeps its collectors on a private registry.
type Prometheus struct {
	reg      *prometheus.Registry
	ops      *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	warnings *prometheus.CounterVec
	rejected *prometheus.CounterVec
}

func NewPrometheus(namespace string) *Prometheus {
	p := &Prometheus{
		reg: prometheus.NewRegistry(),
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "workflow_operations_total",
			Help:      "Workflow operations by result.",
		}, []string{"op", "result"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "workflow_operation_seconds",
			Help:      "Workflow operation latency.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"op"}),
		warnings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "workflow_warnings_total",
			Help:      "Non-blocking warnings raised by workflow operations.",
		}, []string{"op", "kind"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "workflow_rejections_total",
			Help:      "Inputs rejected by validation.",
		}, []string{"op", "kind"}),
	}
	p.reg.MustRegister(
		p.ops, p.latency, p.warnings, p.rejected,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return p
}

func (p *Prometheus) Observe(_ context.Context, op string, success bool, duration time.Duration) {
	if op == "" {
		return
	}
	result := "error"
	if success {
		result = "success"
	}
	p.ops.WithLabelValues(op, result).Inc()
	p.latency.WithLabelValues(op).Observe(duration.Seconds())
}

func (p *Prometheus) Warning(_ context.Context, op, kind string) {
	p.warnings.WithLabelValues(op, kind).Inc()
}

func (p *Prometheus) Rejected(_ context.Context, op, kind string) {
	p.rejected.WithLabelValues(op, kind).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.reg, promhttp.HandlerOpts{Registry: p.reg})
}

func (p *Prometheus) Registry() *prometheus.Registry { return p.reg }
