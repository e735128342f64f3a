package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	application "parcelhub/contexts/finance-core/payment-ledger/application"
	"parcelhub/contexts/finance-core/payment-ledger/domain/entities"
	domainerrors "parcelhub/contexts/finance-core/payment-ledger/domain/errors"
	"parcelhub/contexts/finance-core/payment-ledger/ports"
	contractsv1 "parcelhub/contracts/gen/events/v1"

	"github.com/shopspring/decimal"
)

const sourceService = "payment-ledger"

type RecordPaymentCommand struct {
	ParcelID      string
	PayerEmail    string
	Amount        decimal.Decimal
	Method        string
	TransactionID string
}

type RecordPaymentResult struct {
	Payment entities.Payment
}

type RecordPaymentUseCase struct {
	Payments    ports.PaymentRepository
	Parcels     ports.ParcelGate
	Tx          ports.TxRunner
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Currency    string
	Logger      *slog.Logger
}

// Execute runs the payment workflow in this order, inside one unit of work:
// 1) transaction id lookup
// 2) conditional parcel transition to paid
// 3) ledger entry + outbox append.
// A reused transaction id is never a new payment: the same request is
// rejected as already paid, a different one as a conflict. A rejected
// transition aborts before any ledger write.
func (u RecordPaymentUseCase) Execute(ctx context.Context, cmd RecordPaymentCommand) (RecordPaymentResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if strings.TrimSpace(cmd.ParcelID) == "" || strings.TrimSpace(cmd.TransactionID) == "" {
		return RecordPaymentResult{}, domainerrors.ErrInvalidPayment
	}
	if entities.NormalizeEmail(cmd.PayerEmail) == "" {
		return RecordPaymentResult{}, domainerrors.ErrInvalidPayer
	}
	if !cmd.Amount.IsPositive() {
		return RecordPaymentResult{}, domainerrors.ErrInvalidAmount
	}

	logger.Info("record payment started",
		"event", "record_payment_started",
		"module", "finance-core/payment-ledger",
		"layer", "application",
		"parcel_id", cmd.ParcelID,
		"payer_email", cmd.PayerEmail,
		"transaction_id", cmd.TransactionID,
	)

	var result RecordPaymentResult
	err := u.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, found, err := u.Payments.GetPaymentByTransactionID(ctx, strings.TrimSpace(cmd.TransactionID))
		if err != nil {
			return err
		}
		if found {
			if !existing.SameRequest(cmd.ParcelID, cmd.PayerEmail, cmd.Amount) {
				return domainerrors.ErrTransactionConflict
			}
			return fmt.Errorf("%w: %w: recorded as payment %s",
				domainerrors.ErrPaymentRejected, domainerrors.ErrParcelAlreadyPaid, existing.PaymentID)
		}

		settled, err := u.Parcels.MarkPaid(ctx, strings.TrimSpace(cmd.ParcelID))
		if err != nil {
			if errors.Is(err, domainerrors.ErrParcelNotFound) || errors.Is(err, domainerrors.ErrParcelAlreadyPaid) {
				return fmt.Errorf("%w: %w", domainerrors.ErrPaymentRejected, err)
			}
			return err
		}

		payment, err := u.newPayment(ctx, cmd)
		if err != nil {
			return err
		}
		event, err := u.newRecordedEvent(ctx, payment, settled)
		if err != nil {
			return err
		}
		if err := u.Payments.CreatePaymentWithOutbox(ctx, payment, event); err != nil {
			return err
		}
		result = RecordPaymentResult{Payment: payment}
		return nil
	})
	if err != nil {
		level := slog.LevelError
		if errors.Is(err, domainerrors.ErrPaymentRejected) || errors.Is(err, domainerrors.ErrTransactionConflict) {
			level = slog.LevelWarn
		}
		logger.Log(ctx, level, "record payment failed",
			"event", "record_payment_failed",
			"module", "finance-core/payment-ledger",
			"layer", "application",
			"parcel_id", cmd.ParcelID,
			"transaction_id", cmd.TransactionID,
			"error", err.Error(),
		)
		return RecordPaymentResult{}, err
	}

	logger.Info("payment recorded",
		"event", "payment_ledger_entry_created",
		"module", "finance-core/payment-ledger",
		"layer", "application",
		"payment_id", result.Payment.PaymentID,
		"parcel_id", result.Payment.ParcelID,
		"amount", result.Payment.Amount.String(),
	)
	return result, nil
}

func (u RecordPaymentUseCase) newPayment(ctx context.Context, cmd RecordPaymentCommand) (entities.Payment, error) {
	paymentID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Payment{}, err
	}
	return entities.NewPayment(
		paymentID,
		cmd.ParcelID,
		cmd.PayerEmail,
		cmd.Amount,
		u.currency(),
		cmd.Method,
		cmd.TransactionID,
		u.now(),
	)
}

func (u RecordPaymentUseCase) newRecordedEvent(
	ctx context.Context,
	payment entities.Payment,
	settled ports.SettledParcel,
) (ports.PaymentRecordedEvent, error) {
	eventID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return ports.PaymentRecordedEvent{}, err
	}
	data, err := json.Marshal(contractsv1.PaymentRecordedData{
		PaymentID:     payment.PaymentID,
		ParcelID:      payment.ParcelID,
		TrackingCode:  settled.TrackingCode,
		PayerEmail:    payment.PayerEmail,
		Amount:        payment.Amount.String(),
		Currency:      payment.Currency,
		Method:        payment.Method,
		TransactionID: payment.TransactionID,
		PaidAt:        payment.PaidAtString,
	})
	if err != nil {
		return ports.PaymentRecordedEvent{}, err
	}
	return ports.PaymentRecordedEvent{
		EventID:      eventID,
		EventType:    contractsv1.TopicPaymentRecorded,
		PartitionKey: payment.ParcelID,
		OccurredAt:   payment.PaidAt,
		Envelope: ports.EventEnvelope{
			EventID:          eventID,
			EventType:        contractsv1.TopicPaymentRecorded,
			OccurredAt:       payment.PaidAt,
			SourceService:    sourceService,
			SchemaVersion:    1,
			PartitionKeyPath: "parcel_id",
			PartitionKey:     payment.ParcelID,
			Data:             data,
		},
	}, nil
}

func (u RecordPaymentUseCase) currency() string {
	if strings.TrimSpace(u.Currency) == "" {
		return "usd"
	}
	return strings.ToLower(u.Currency)
}

func (u RecordPaymentUseCase) now() time.Time {
	if u.Clock == nil {
		return time.Now().UTC()
	}
	return u.Clock.Now().UTC()
}
