// Package workflow owns every mutation of the marketplace: projects and
// their bids, material listings and orders.
package workflow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"buildmarket/internal/catalog"
	"buildmarket/internal/events"
	"buildmarket/internal/metrics"
	"buildmarket/internal/sequence"
	"buildmarket/models"
)

// Store is the entity store the engine mutates.
type Store interface {
	AddProject(ctx context.Context, p models.Project) error
	GetProject(ctx context.Context, id string) (models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	UpdateProject(ctx context.Context, id string, mutate func(*models.Project) error) (models.Project, error)

	AddMaterial(ctx context.Context, m models.Material) error
	GetMaterial(ctx context.Context, id string) (models.Material, error)
	ListMaterials(ctx context.Context) ([]models.Material, error)
	UpdateMaterial(ctx context.Context, id string, mutate func(*models.Material) error) (models.Material, error)

	GetOrder(ctx context.Context, id string) (models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	UpdateOrder(ctx context.Context, id string, mutate func(*models.Order) error) (models.Order, error)
	// PlaceOrder runs build against the material and inserts its order atomically.
	PlaceOrder(ctx context.Context, materialID string, build func(models.Material) (models.Order, error)) (models.Order, error)
}

const (
	opCreateProject         = "createProject"
	opSubmitBid             = "submitBid"
	opTransitionBidStatus   = "transitionBidStatus"
	opAddMaterial           = "addMaterial"
	opUpdateMaterial        = "updateMaterial"
	opPlaceOrder            = "placeOrder"
	opTransitionOrderStatus = "transitionOrderStatus"
)

// DefaultSupplier names listings whose input carries no supplier.
const DefaultSupplier = "Your Company"

type Engine struct {
	store    Store
	catalog  *catalog.Catalog
	seq      sequence.Sequence
	pub      events.Publisher
	metrics  metrics.Recorder
	log      *slog.Logger
	now      func() time.Time
	supplier string
	producer string
}

type Option func(*Engine)

func WithCatalog(c *catalog.Catalog) Option { return func(e *Engine) { e.catalog = c } }

// WithSequence sets the order number source. The default is an in-process counter.
func WithSequence(s sequence.Sequence) Option { return func(e *Engine) { e.seq = s } }

func WithPublisher(p events.Publisher) Option { return func(e *Engine) { e.pub = p } }

func WithMetrics(r metrics.Recorder) Option { return func(e *Engine) { e.metrics = r } }

func WithLogger(l *slog.Logger) Option { return func(e *Engine) { e.log = l } }

func WithClock(now func() time.Time) Option { return func(e *Engine) { e.now = now } }

func WithDefaultSupplier(name string) Option { return func(e *Engine) { e.supplier = name } }

// WithProducer sets the producer name stamped on published events.
func WithProducer(name string) Option { return func(e *Engine) { e.producer = name } }

func New(store Store, opts ...Option) *Engine {
	e := &Engine{
		store:    store,
		catalog:  catalog.Default(),
		seq:      sequence.NewCounter(),
		pub:      events.Nop{},
		metrics:  metrics.Nop{},
		log:      slog.Default(),
		now:      time.Now,
		supplier: DefaultSupplier,
		producer: "buildmarket",
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

func (e *Engine) observe(ctx context.Context, op string, start time.Time, err error) {
	e.metrics.Observe(ctx, op, err == nil, e.now().Sub(start))
	if err == nil {
		return
	}
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		e.metrics.Rejected(ctx, op, string(ve.Kind))
		e.log.DebugContext(ctx, "input rejected", "op", op, "kind", ve.Kind, "field", ve.Field)
		return
	}
	if !errors.Is(err, models.ErrNotFound) {
		e.log.ErrorContext(ctx, "operation failed", "op", op, "err", err)
	}
}

func (e *Engine) warn(ctx context.Context, op string, w Warning) {
	e.metrics.Warning(ctx, op, string(w.Kind))
	e.log.WarnContext(ctx, w.Message, "op", op, "kind", w.Kind)
}

// publish is best effort; the command already committed.
func (e *Engine) publish(ctx context.Context, kind, actor, correlationID string, payload any) {
	env, err := events.New(kind, e.producer, actor, correlationID, e.now(), payload)
	if err == nil {
		err = e.pub.Publish(ctx, env)
	}
	if err != nil {
		e.log.ErrorContext(ctx, "publish event", "kind", kind, "id", correlationID, "err", err)
	}
}
