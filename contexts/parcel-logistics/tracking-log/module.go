package trackinglog

import (
	"log/slog"

	httpadapter "parcelhub/contexts/parcel-logistics/tracking-log/adapters/http"
	"parcelhub/contexts/parcel-logistics/tracking-log/adapters/memory"
	"parcelhub/contexts/parcel-logistics/tracking-log/application"
	workerapp "parcelhub/contexts/parcel-logistics/tracking-log/application/workers"
	"parcelhub/contexts/parcel-logistics/tracking-log/ports"
)

type Module struct {
	Handler         httpadapter.Handler
	PaymentConsumer workerapp.PaymentRecordedConsumer
	Store           *memory.Store
}

type Dependencies struct {
	Repository  ports.TrackingRepository
	Dedup       ports.EventDedupStore
	Subscriber  ports.EventSubscriber
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:        deps.Repository,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		PaymentConsumer: workerapp.PaymentRecordedConsumer{
			Subscriber: deps.Subscriber,
			Service:    service,
			Dedup:      deps.Dedup,
			Clock:      deps.Clock,
			Logger:     deps.Logger,
		},
	}
}

func NewInMemoryModule(subscriber ports.EventSubscriber, logger *slog.Logger) Module {
	store := memory.NewStore(logger)
	module := NewModule(Dependencies{
		Repository:  store,
		Dedup:       store,
		Subscriber:  subscriber,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
