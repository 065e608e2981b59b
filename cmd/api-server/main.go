package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"buildmarket/db"
	"buildmarket/db/migrations"
	"buildmarket/internal/config"
	"buildmarket/internal/events"
	"buildmarket/internal/handlers"
	"buildmarket/internal/metrics"
	"buildmarket/internal/sequence"
	"buildmarket/internal/workflow"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	store := db.NewMemoryStorage()

	if cfg.PostgresConn != "" {
		conn, err := sqlx.Connect("postgres", cfg.PostgresConn)
		if err != nil {
			return fmt.Errorf("connect to db: %w", err)
		}
		defer conn.Close()

		if err := migrations.Run(conn.DB); err != nil {
			return err
		}
		journal := db.NewPostgresJournal(conn)
		snap, err := journal.Load(ctx)
		if err != nil {
			return err
		}
		if err := store.Restore(snap); err != nil {
			return err
		}
		store.SetJournal(journal)
		log.Info("state restored", "projects", len(snap.Projects), "materials", len(snap.Materials), "orders", len(snap.Orders))
	}

	orders, err := store.ListOrders(ctx)
	if err != nil {
		return err
	}
	last := workflow.LastOrderNumber(orders)

	var seq sequence.Sequence
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		rs := sequence.NewRedis(rdb, "")
		if err := rs.SeedAtLeast(ctx, last); err != nil {
			return err
		}
		seq = rs
	} else {
		c := sequence.NewCounter()
		c.Seed(last)
		seq = c
	}

	var pub events.Publisher = events.Nop{}
	if len(cfg.KafkaBrokers) > 0 {
		kp := events.NewKafkaPublisher(cfg.KafkaBrokers, 256, log)
		kp.Start()
		defer kp.Close()
		pub = kp
	}

	prom := metrics.NewPrometheus("buildmarket")
	engine := workflow.New(store,
		workflow.WithSequence(seq),
		workflow.WithPublisher(pub),
		workflow.WithMetrics(prom),
		workflow.WithLogger(log),
		workflow.WithDefaultSupplier(cfg.DefaultSupplier),
		workflow.WithProducer(cfg.ServiceName),
	)
	if cfg.SeedSampleData {
		if err := engine.SeedSampleData(ctx); err != nil {
			return err
		}
	}

	count, err := store.CountOrders(ctx)
	if err != nil {
		return err
	}
	log.Info("store ready", "orders", count, "next_order", workflow.FormatOrderID(last+1))

	h := handlers.NewHandler(engine, store)
	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           handlers.NewRouter(h, prom.Handler()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", cfg.ServerAddress)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
