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

// API process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring (ports + adapters + use cases).
// 3) Serve HTTP until SIGINT/SIGTERM, then drain.
//
//	@title						ParcelHub API
//	@version					1.0
//	@description				Parcel booking, payment and tracking backend.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {
	flags := pflag.NewFlagSet("parcelhub-api", pflag.ExitOnError)
	config.RegisterFlags(flags)
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load(flags)
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}
	logger := bootstrap.NewLogger(cfg, "api")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.BuildAPI(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("bootstrap api failed: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("api shutdown close failed", "event", "api_close_failed", "error", err.Error())
		}
	}()

	if err := app.Run(ctx); err != nil {
		logger.Error("api stopped with error", "event", "api_run_failed", "error", err.Error())
		os.Exit(1)
	}
}
