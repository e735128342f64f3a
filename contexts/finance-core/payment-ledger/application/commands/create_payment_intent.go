package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	application "parcelhub/contexts/finance-core/payment-ledger/application"
	"parcelhub/contexts/finance-core/payment-ledger/domain/entities"
	domainerrors "parcelhub/contexts/finance-core/payment-ledger/domain/errors"
	"parcelhub/contexts/finance-core/payment-ledger/domain/services"
	"parcelhub/contexts/finance-core/payment-ledger/ports"

	"github.com/shopspring/decimal"
)

// CreatePaymentIntentCommand carries the amount in minor units. When
// AmountMinor is zero, Amount is converted from major units instead.
type CreatePaymentIntentCommand struct {
	AmountMinor int64
	Amount      decimal.Decimal
	Currency    string
}

// CreatePaymentIntentUseCase passes the amount straight to the processor.
// The processor is called exactly once per request.
type CreatePaymentIntentUseCase struct {
	Processor ports.PaymentProcessor
	Currency  string
	Logger    *slog.Logger
}

func (u CreatePaymentIntentUseCase) Execute(ctx context.Context, cmd CreatePaymentIntentCommand) (entities.PaymentIntent, error) {
	logger := application.ResolveLogger(u.Logger)
	currency := strings.ToLower(strings.TrimSpace(cmd.Currency))
	if currency == "" {
		currency = strings.ToLower(strings.TrimSpace(u.Currency))
	}
	if currency == "" {
		currency = "usd"
	}
	amountMinor := cmd.AmountMinor
	if amountMinor == 0 && !cmd.Amount.IsZero() {
		converted, err := services.ToMinorUnits(cmd.Amount, currency)
		if err != nil {
			return entities.PaymentIntent{}, err
		}
		amountMinor = converted
	}
	if amountMinor <= 0 {
		return entities.PaymentIntent{}, domainerrors.ErrInvalidAmount
	}
	cmd.AmountMinor = amountMinor

	intent, err := u.Processor.CreateIntent(ctx, cmd.AmountMinor, currency)
	if err != nil {
		logger.Error("payment intent creation failed",
			"event", "payment_intent_failed",
			"module", "finance-core/payment-ledger",
			"layer", "application",
			"amount_minor", cmd.AmountMinor,
			"currency", currency,
			"error", err.Error(),
		)
		return entities.PaymentIntent{}, fmt.Errorf("%w: %w", domainerrors.ErrProcessorFailure, err)
	}

	logger.Info("payment intent created",
		"event", "payment_intent_created",
		"module", "finance-core/payment-ledger",
		"layer", "application",
		"intent_id", intent.IntentID,
		"amount_minor", intent.AmountMinor,
		"currency", intent.Currency,
	)
	return intent, nil
}
