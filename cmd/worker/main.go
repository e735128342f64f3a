package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"parcelhub/internal/app/bootstrap"
	"parcelhub/internal/platform/config"

	"github.com/spf13/pflag"
)

// Worker process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring.
// 3) Relay the payment outbox and consume payment.recorded until signalled.
func main() {
	flags := pflag.NewFlagSet("parcelhub-worker", pflag.ExitOnError)
	config.RegisterFlags(flags)
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load(flags)
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}
	logger := bootstrap.NewLogger(cfg, "worker")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.BuildWorker(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("bootstrap worker failed: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("worker shutdown close failed", "event", "worker_close_failed", "error", err.Error())
		}
	}()

	if err := app.Run(ctx); err != nil {
		logger.Error("worker stopped with error", "event", "worker_run_failed", "error", err.Error())
		os.Exit(1)
	}
}
