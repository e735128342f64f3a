package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	paymentledger "parcelhub/contexts/finance-core/payment-ledger"
	ledgermemory "parcelhub/contexts/finance-core/payment-ledger/adapters/memory"
	ledgerpostgres "parcelhub/contexts/finance-core/payment-ledger/adapters/postgres"
	stripeadapter "parcelhub/contexts/finance-core/payment-ledger/adapters/stripe"
	ledgerports "parcelhub/contexts/finance-core/payment-ledger/ports"
	riderdirectory "parcelhub/contexts/fleet-operations/rider-directory"
	riderpostgres "parcelhub/contexts/fleet-operations/rider-directory/adapters/postgres"
	authgate "parcelhub/contexts/identity-access/auth-gate"
	authmemory "parcelhub/contexts/identity-access/auth-gate/adapters/memory"
	"parcelhub/contexts/identity-access/auth-gate/adapters/signedtoken"
	authports "parcelhub/contexts/identity-access/auth-gate/ports"
	userdirectory "parcelhub/contexts/identity-access/user-directory"
	userpostgres "parcelhub/contexts/identity-access/user-directory/adapters/postgres"
	parcelregistry "parcelhub/contexts/parcel-logistics/parcel-registry"
	parcelpostgres "parcelhub/contexts/parcel-logistics/parcel-registry/adapters/postgres"
	trackinglog "parcelhub/contexts/parcel-logistics/tracking-log"
	trackingmemory "parcelhub/contexts/parcel-logistics/tracking-log/adapters/memory"
	trackingpostgres "parcelhub/contexts/parcel-logistics/tracking-log/adapters/postgres"
	"parcelhub/internal/app/bridge"
	"parcelhub/internal/platform/config"
	"parcelhub/internal/platform/db"
	"parcelhub/internal/platform/httpserver"
	"parcelhub/internal/platform/messaging"
)

// runtime holds every wired context plus the shared infrastructure they run on.
type runtime struct {
	modules  httpserver.Modules
	bus      *messaging.Bus
	postgres *db.Postgres
}

func buildRuntime(ctx context.Context, cfg config.Config, logger *slog.Logger) (*runtime, error) {
	bus, err := messaging.NewBus(cfg.EventBrokers, logger)
	if err != nil {
		return nil, err
	}
	verifier, err := buildVerifier(cfg)
	if err != nil {
		return nil, err
	}
	processor, err := buildProcessor(cfg, logger)
	if err != nil {
		return nil, err
	}

	rt := &runtime{bus: bus}
	rt.modules.Auth = authgate.NewModule(authgate.Dependencies{
		Verifier: verifier,
		Logger:   logger,
	})

	switch cfg.StorageDriver {
	case config.StoragePostgres:
		pg, err := db.Connect(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		if cfg.AutoMigrate {
			if err := pg.Migrate(ctx, models()...); err != nil {
				_ = pg.Close()
				return nil, err
			}
		}
		rt.postgres = pg
		rt.wirePostgres(cfg, processor, logger)
	default:
		rt.wireMemory(cfg, processor, logger)
	}
	return rt, nil
}

func (rt *runtime) wireMemory(cfg config.Config, processor ledgerports.PaymentProcessor, logger *slog.Logger) {
	parcels := parcelregistry.NewInMemoryModule(nil, logger)
	rt.modules.Parcels = parcels

	ledgerStore := ledgermemory.NewStore(logger)
	rt.modules.Payments = paymentledger.NewModule(paymentledger.Dependencies{
		Payments:    ledgerStore,
		Outbox:      ledgerStore,
		Parcels:     bridge.ParcelPaymentGate{Parcels: parcels.MarkPaid},
		Tx:          ledgerStore,
		Processor:   processor,
		Publisher:   rt.bus,
		Clock:       ledgerStore,
		IDGenerator: ledgerStore,
		Currency:    cfg.PaymentCurrency,
		Logger:      logger,
	})
	rt.modules.Payments.Store = ledgerStore

	trackingStore := trackingmemory.NewStore(logger)
	rt.modules.Tracking = trackinglog.NewModule(trackinglog.Dependencies{
		Repository:  countingTrackingRepository{TrackingRepository: trackingStore},
		Dedup:       trackingStore,
		Subscriber:  rt.bus,
		Clock:       trackingStore,
		IDGenerator: trackingStore,
		Logger:      logger,
	})
	rt.modules.Tracking.Store = trackingStore

	rt.modules.Riders = riderdirectory.NewInMemoryModule(logger)
	rt.modules.Users = userdirectory.NewInMemoryModule(cfg.AuthAdminSubjects, logger)
}

func (rt *runtime) wirePostgres(cfg config.Config, processor ledgerports.PaymentProcessor, logger *slog.Logger) {
	gdb := rt.postgres.DB

	parcels := parcelregistry.NewModule(parcelregistry.Dependencies{
		Parcels:       parcelpostgres.NewRepository(gdb, logger),
		Clock:         parcelpostgres.SystemClock{},
		IDGenerator:   parcelpostgres.UUIDGenerator{},
		TrackingCodes: parcelpostgres.ULIDTrackingCodes{},
		Logger:        logger,
	})
	rt.modules.Parcels = parcels

	ledgerRepo := ledgerpostgres.NewRepository(gdb, logger)
	rt.modules.Payments = paymentledger.NewModule(paymentledger.Dependencies{
		Payments:    ledgerRepo,
		Outbox:      ledgerRepo,
		Parcels:     bridge.ParcelPaymentGate{Parcels: parcels.MarkPaid},
		Tx:          rt.postgres,
		Processor:   processor,
		Publisher:   rt.bus,
		Clock:       ledgerpostgres.SystemClock{},
		IDGenerator: ledgerpostgres.UUIDGenerator{},
		Currency:    cfg.PaymentCurrency,
		Logger:      logger,
	})

	trackingRepo := trackingpostgres.NewRepository(gdb, logger)
	rt.modules.Tracking = trackinglog.NewModule(trackinglog.Dependencies{
		Repository:  countingTrackingRepository{TrackingRepository: trackingRepo},
		Dedup:       trackingRepo,
		Subscriber:  rt.bus,
		Clock:       trackingpostgres.SystemClock{},
		IDGenerator: trackingpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	rt.modules.Riders = riderdirectory.NewModule(riderdirectory.Dependencies{
		Repository:  riderpostgres.NewRepository(gdb, logger),
		Clock:       riderpostgres.SystemClock{},
		IDGenerator: riderpostgres.UUIDGenerator{},
		Logger:      logger,
	})
	rt.modules.Users = userdirectory.NewModule(userdirectory.Dependencies{
		Repository: userpostgres.NewRepository(gdb, logger),
		Clock:      userpostgres.SystemClock{},
		Admins:     cfg.AuthAdminSubjects,
		Logger:     logger,
	})
}

func (rt *runtime) close() error {
	if rt.postgres != nil {
		return rt.postgres.Close()
	}
	return nil
}

func models() []any {
	var out []any
	out = append(out, parcelpostgres.Models()...)
	out = append(out, ledgerpostgres.Models()...)
	out = append(out, trackingpostgres.Models()...)
	out = append(out, riderpostgres.Models()...)
	out = append(out, userpostgres.Models()...)
	return out
}

// buildVerifier prefers signed tokens. Without a public key the static dev
// token table is used.
func buildVerifier(cfg config.Config) (authports.IdentityVerifier, error) {
	if strings.TrimSpace(cfg.AuthPublicKey) != "" {
		publicKey, err := signedtoken.ParsePublicKey(cfg.AuthPublicKey)
		if err != nil {
			return nil, fmt.Errorf("parse AUTH_PUBLIC_KEY: %w", err)
		}
		return signedtoken.Verifier{
			PublicKey: publicKey,
			Audience:  cfg.AuthAudience,
			Blacklist: signedtoken.NewBlacklist(),
		}, nil
	}
	return authmemory.NewStaticVerifier(cfg.AuthDevTokens), nil
}

func buildProcessor(cfg config.Config, logger *slog.Logger) (ledgerports.PaymentProcessor, error) {
	if cfg.PaymentProcessor == config.ProcessorStripe {
		return stripeadapter.NewProcessor(stripeadapter.Config{
			SecretKey: cfg.StripeSecretKey,
			APIURL:    cfg.StripeAPIURL,
		}, logger)
	}
	return ledgermemory.NewProcessor(), nil
}
