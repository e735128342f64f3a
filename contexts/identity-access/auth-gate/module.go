package authgate

import (
	"log/slog"

	"parcelhub/contexts/identity-access/auth-gate/adapters/memory"
	"parcelhub/contexts/identity-access/auth-gate/application"
	"parcelhub/contexts/identity-access/auth-gate/ports"
)

type Module struct {
	Guard application.Guard
}

type Dependencies struct {
	Verifier ports.IdentityVerifier
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Guard: application.Guard{
			Verifier: deps.Verifier,
			Logger:   deps.Logger,
		},
	}
}

// NewInMemoryModule wires the guard against a static token table.
func NewInMemoryModule(tokens map[string]string, logger *slog.Logger) Module {
	return NewModule(Dependencies{
		Verifier: memory.NewStaticVerifier(tokens),
		Logger:   logger,
	})
}
