package parcelregistry

import (
	"log/slog"

	httpadapter "parcelhub/contexts/parcel-logistics/parcel-registry/adapters/http"
	"parcelhub/contexts/parcel-logistics/parcel-registry/adapters/memory"
	"parcelhub/contexts/parcel-logistics/parcel-registry/application/commands"
	"parcelhub/contexts/parcel-logistics/parcel-registry/application/queries"
	"parcelhub/contexts/parcel-logistics/parcel-registry/domain/entities"
	"parcelhub/contexts/parcel-logistics/parcel-registry/ports"
)

// Module is the composition surface for the parcel registry.
// MarkPaid is exported for the payment ledger bridge; Store is exposed for
// tests when the module is built in memory.
type Module struct {
	Handler  httpadapter.Handler
	MarkPaid commands.MarkPaidUseCase
	Store    *memory.Store
}

type Dependencies struct {
	Parcels       ports.ParcelRepository
	Clock         ports.Clock
	IDGenerator   ports.IDGenerator
	TrackingCodes ports.TrackingCodeGenerator
	Logger        *slog.Logger
}

// NewModule wires parcel use cases against explicit ports.
func NewModule(deps Dependencies) Module {
	handler := httpadapter.Handler{
		CreateParcel: commands.CreateParcelUseCase{
			Parcels:       deps.Parcels,
			Clock:         deps.Clock,
			IDGenerator:   deps.IDGenerator,
			TrackingCodes: deps.TrackingCodes,
			Logger:        deps.Logger,
		},
		DeleteParcel: commands.DeleteParcelUseCase{
			Parcels: deps.Parcels,
			Logger:  deps.Logger,
		},
		GetParcel: queries.GetParcelUseCase{
			Parcels: deps.Parcels,
			Logger:  deps.Logger,
		},
		ListParcels: queries.ListParcelsUseCase{
			Parcels: deps.Parcels,
			Logger:  deps.Logger,
		},
		ListAllParcels: queries.ListAllParcelsUseCase{
			Parcels: deps.Parcels,
		},
		Logger: deps.Logger,
	}

	return Module{
		Handler: handler,
		MarkPaid: commands.MarkPaidUseCase{
			Parcels: deps.Parcels,
			Clock:   deps.Clock,
			Logger:  deps.Logger,
		},
	}
}

// NewInMemoryModule wires parcel use cases against the in-memory store.
func NewInMemoryModule(seed []entities.Parcel, logger *slog.Logger) Module {
	store := memory.NewStore(seed, logger)
	module := NewModule(Dependencies{
		Parcels:       store,
		Clock:         store,
		IDGenerator:   store,
		TrackingCodes: store,
		Logger:        logger,
	})
	module.Store = store
	return module
}
