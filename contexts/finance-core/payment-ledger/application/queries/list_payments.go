package queries

import (
	"context"

	"parcelhub/contexts/finance-core/payment-ledger/domain/entities"
	domainerrors "parcelhub/contexts/finance-core/payment-ledger/domain/errors"
	"parcelhub/contexts/finance-core/payment-ledger/ports"
)

type ListPaymentsUseCase struct {
	Payments ports.PaymentRepository
}

func (u ListPaymentsUseCase) Execute(ctx context.Context, payerEmail string) ([]entities.Payment, error) {
	payer := entities.NormalizeEmail(payerEmail)
	if payer == "" {
		return nil, domainerrors.ErrInvalidPayer
	}
	return u.Payments.ListPaymentsByPayer(ctx, payer)
}
