package riderdirectory

import (
	"log/slog"

	httpadapter "parcelhub/contexts/fleet-operations/rider-directory/adapters/http"
	"parcelhub/contexts/fleet-operations/rider-directory/adapters/memory"
	"parcelhub/contexts/fleet-operations/rider-directory/application"
	"parcelhub/contexts/fleet-operations/rider-directory/ports"
)

type Module struct {
	Handler httpadapter.Handler
}

type Dependencies struct {
	Repository  ports.RiderRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Handler: httpadapter.Handler{
			Service: application.Service{
				Repo:        deps.Repository,
				Clock:       deps.Clock,
				IDGenerator: deps.IDGenerator,
				Logger:      deps.Logger,
			},
			Logger: deps.Logger,
		},
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	return NewModule(Dependencies{
		Repository:  store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
}
