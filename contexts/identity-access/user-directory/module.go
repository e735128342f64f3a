package userdirectory

import (
	"log/slog"

	httpadapter "parcelhub/contexts/identity-access/user-directory/adapters/http"
	"parcelhub/contexts/identity-access/user-directory/adapters/memory"
	"parcelhub/contexts/identity-access/user-directory/application"
	"parcelhub/contexts/identity-access/user-directory/ports"
)

type Module struct {
	Handler httpadapter.Handler
}

type Dependencies struct {
	Repository ports.UserRepository
	Clock      ports.Clock
	Admins     []string
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Handler: httpadapter.Handler{
			Service: application.Service{
				Repo:   deps.Repository,
				Clock:  deps.Clock,
				Admins: deps.Admins,
				Logger: deps.Logger,
			},
			Logger: deps.Logger,
		},
	}
}

func NewInMemoryModule(admins []string, logger *slog.Logger) Module {
	store := memory.NewStore()
	return NewModule(Dependencies{
		Repository: store,
		Clock:      store,
		Admins:     admins,
		Logger:     logger,
	})
}
