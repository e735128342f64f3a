package bootstrap

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	ledgerworkers "parcelhub/contexts/finance-core/payment-ledger/application/workers"
	trackingworkers "parcelhub/contexts/parcel-logistics/tracking-log/application/workers"
	"parcelhub/internal/platform/config"
	"parcelhub/internal/platform/httpserver"
	"parcelhub/internal/platform/metrics"

	"golang.org/x/sync/errgroup"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	runtime         *runtime
	server          *httpserver.Server
	worker          *WorkerApp
	shutdownTimeout time.Duration
	logger          *slog.Logger
}

type WorkerApp struct {
	runtime      *runtime
	outboxRelay  ledgerworkers.OutboxRelay
	payments     trackingworkers.PaymentRecordedConsumer
	pollInterval time.Duration
	logger       *slog.Logger
}

// NewLogger returns the process JSON logger tagged with service and process.
func NewLogger(cfg config.Config, process string) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)})
	return slog.New(handler).With("service", cfg.ServiceName, "process", process)
}

// BuildAPI wires the HTTP server. With in-memory storage the relay and
// consumer run inside the API process, since no other process can see the
// stores.
func BuildAPI(ctx context.Context, cfg config.Config, logger *slog.Logger) (*APIApp, error) {
	rt, err := buildRuntime(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	app := &APIApp{
		runtime:         rt,
		server:          httpserver.New(rt.modules, logger, normalizeAddr(cfg.HTTPPort)),
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
	if cfg.StorageDriver == config.StorageMemory {
		app.worker = newWorkerApp(rt, cfg, logger)
	}
	return app, nil
}

func BuildWorker(ctx context.Context, cfg config.Config, logger *slog.Logger) (*WorkerApp, error) {
	rt, err := buildRuntime(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	if cfg.StorageDriver == config.StorageMemory {
		logger.Warn("worker started with in-memory storage; it sees no API writes",
			"event", "bootstrap_worker_memory_storage",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return newWorkerApp(rt, cfg, logger), nil
}

func newWorkerApp(rt *runtime, cfg config.Config, logger *slog.Logger) *WorkerApp {
	relay := rt.modules.Payments.OutboxRelay
	relay.BatchSize = 100
	return &WorkerApp{
		runtime:      rt,
		outboxRelay:  relay,
		payments:     rt.modules.Tracking.PaymentConsumer,
		pollInterval: cfg.WorkerPollInterval,
		logger:       logger,
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests within
// the shutdown timeout.
func (a *APIApp) Run(ctx context.Context) error {
	a.logger.Info("api app started",
		"event", "bootstrap_api_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"embedded_worker", a.worker != nil,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(a.server.Start)
	g.Go(func() error {
		<-gctx.Done()
		timeout := a.shutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return a.server.Shutdown(shutdownCtx)
	})
	if a.worker != nil {
		g.Go(func() error {
			return a.worker.Run(gctx)
		})
	}
	return g.Wait()
}

func (a *APIApp) Close() error {
	return a.runtime.close()
}

// Run starts the payment consumer and polls the ledger outbox until ctx is
// cancelled. A failed relay cycle leaves rows pending for the next tick.
func (w *WorkerApp) Run(ctx context.Context) error {
	if err := w.payments.Start(ctx); err != nil {
		return err
	}

	interval := w.pollInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", interval.String(),
	)

	for {
		sent, err := w.outboxRelay.RunOnce(ctx)
		if sent > 0 {
			metrics.OutboxRelayedTotal.Add(float64(sent))
		}
		if err != nil && ctx.Err() != nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	return w.runtime.close()
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
