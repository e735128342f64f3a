package paymentledger

import (
	"log/slog"

	httpadapter "parcelhub/contexts/finance-core/payment-ledger/adapters/http"
	"parcelhub/contexts/finance-core/payment-ledger/adapters/memory"
	"parcelhub/contexts/finance-core/payment-ledger/application/commands"
	"parcelhub/contexts/finance-core/payment-ledger/application/queries"
	workerapp "parcelhub/contexts/finance-core/payment-ledger/application/workers"
	"parcelhub/contexts/finance-core/payment-ledger/ports"
)

// Module is the composition surface for the payment ledger.
type Module struct {
	Handler     httpadapter.Handler
	OutboxRelay workerapp.OutboxRelay
	Store       *memory.Store
	Processor   *memory.Processor
}

type Dependencies struct {
	Payments    ports.PaymentRepository
	Outbox      ports.OutboxRepository
	Parcels     ports.ParcelGate
	Tx          ports.TxRunner
	Processor   ports.PaymentProcessor
	Publisher   ports.EventPublisher
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Currency    string
	Logger      *slog.Logger
}

// NewModule wires ledger use cases against explicit ports.
func NewModule(deps Dependencies) Module {
	return Module{
		Handler: httpadapter.Handler{
			RecordPayment: commands.RecordPaymentUseCase{
				Payments:    deps.Payments,
				Parcels:     deps.Parcels,
				Tx:          deps.Tx,
				Clock:       deps.Clock,
				IDGenerator: deps.IDGenerator,
				Currency:    deps.Currency,
				Logger:      deps.Logger,
			},
			CreatePaymentIntent: commands.CreatePaymentIntentUseCase{
				Processor: deps.Processor,
				Currency:  deps.Currency,
				Logger:    deps.Logger,
			},
			ListPayments: queries.ListPaymentsUseCase{
				Payments: deps.Payments,
			},
			Logger: deps.Logger,
		},
		OutboxRelay: workerapp.OutboxRelay{
			Outbox:    deps.Outbox,
			Publisher: deps.Publisher,
			Clock:     deps.Clock,
			Logger:    deps.Logger,
		},
	}
}

// NewInMemoryModule wires the ledger against the in-memory store and a fake
// processor. The parcel gate and publisher still come from the caller.
func NewInMemoryModule(parcels ports.ParcelGate, publisher ports.EventPublisher, logger *slog.Logger) Module {
	store := memory.NewStore(logger)
	processor := memory.NewProcessor()
	module := NewModule(Dependencies{
		Payments:    store,
		Outbox:      store,
		Parcels:     parcels,
		Tx:          store,
		Processor:   processor,
		Publisher:   publisher,
		Clock:       store,
		IDGenerator: store,
		Currency:    "usd",
		Logger:      logger,
	})
	module.Store = store
	module.Processor = processor
	return module
}
