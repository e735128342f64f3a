package services

import (
	"errors"
	"math"
	"testing"

	domainerrors "parcelhub/contexts/finance-core/payment-ledger/domain/errors"

	"github.com/shopspring/decimal"
)

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		amount   string
		currency string
		want     int64
	}{
		{amount: "5", currency: "usd", want: 500},
		{amount: "12.34", currency: "EUR", want: 1234},
		{amount: "1500", currency: "jpy", want: 1500},
	}
	for _, tc := range cases {
		got, err := ToMinorUnits(decimal.RequireFromString(tc.amount), tc.currency)
		if err != nil {
			t.Fatalf("%s %s: unexpected error %v", tc.amount, tc.currency, err)
		}
		if got != tc.want {
			t.Fatalf("%s %s: expected %d, got %d", tc.amount, tc.currency, tc.want, got)
		}
	}
}

func TestToMinorUnitsRejectsFractionsAndNonPositive(t *testing.T) {
	if _, err := ToMinorUnits(decimal.RequireFromString("1.005"), "usd"); !errors.Is(err, domainerrors.ErrInvalidAmount) {
		t.Fatalf("expected invalid amount for sub-cent fraction, got %v", err)
	}
	if _, err := ToMinorUnits(decimal.RequireFromString("10.5"), "jpy"); !errors.Is(err, domainerrors.ErrInvalidAmount) {
		t.Fatalf("expected invalid amount for fractional yen, got %v", err)
	}
	if _, err := ToMinorUnits(decimal.Zero, "usd"); !errors.Is(err, domainerrors.ErrInvalidAmount) {
		t.Fatalf("expected invalid amount for zero, got %v", err)
	}
	if _, err := ToMinorUnits(decimal.RequireFromString("184467440737095566.16"), "usd"); !errors.Is(err, domainerrors.ErrInvalidAmount) {
		t.Fatalf("expected invalid amount beyond int64 cents, got %v", err)
	}
	if _, err := ToMinorUnits(decimal.RequireFromString("9223372036854775808"), "jpy"); !errors.Is(err, domainerrors.ErrInvalidAmount) {
		t.Fatalf("expected invalid amount beyond int64 yen, got %v", err)
	}
	got, err := ToMinorUnits(decimal.RequireFromString("92233720368547758.07"), "usd")
	if err != nil || got != math.MaxInt64 {
		t.Fatalf("expected max int64 cents, got %d %v", got, err)
	}
}

func TestFromMinorUnits(t *testing.T) {
	if got := FromMinorUnits(1234, "usd"); !got.Equal(decimal.RequireFromString("12.34")) {
		t.Fatalf("expected 12.34, got %s", got)
	}
	if got := FromMinorUnits(700, "krw"); !got.Equal(decimal.NewFromInt(700)) {
		t.Fatalf("expected 700, got %s", got)
	}
}
