package services

import (
	"math"
	"strings"

	domainerrors "parcelhub/contexts/finance-core/payment-ledger/domain/errors"

	"github.com/shopspring/decimal"
)

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// zeroDecimalCurrencies are charged in whole units by card processors.
var zeroDecimalCurrencies = map[string]struct{}{
	"bif": {}, "clp": {}, "djf": {}, "gnf": {}, "jpy": {}, "kmf": {}, "krw": {},
	"mga": {}, "pyg": {}, "rwf": {}, "ugx": {}, "vnd": {}, "vuv": {}, "xaf": {},
	"xof": {}, "xpf": {},
}

// MinorUnitExponent returns how many decimal places a currency's minor unit has.
func MinorUnitExponent(currency string) int32 {
	if _, ok := zeroDecimalCurrencies[strings.ToLower(strings.TrimSpace(currency))]; ok {
		return 0
	}
	return 2
}

// ToMinorUnits converts a major-unit amount to an integer minor-unit amount.
// Fractions below the minor unit and amounts beyond int64 are rejected rather
// than rounded or truncated.
func ToMinorUnits(amount decimal.Decimal, currency string) (int64, error) {
	if !amount.IsPositive() {
		return 0, domainerrors.ErrInvalidAmount
	}
	shifted := amount.Shift(MinorUnitExponent(currency))
	if !shifted.Equal(shifted.Truncate(0)) || shifted.GreaterThan(maxMinorUnits) {
		return 0, domainerrors.ErrInvalidAmount
	}
	return shifted.IntPart(), nil
}

// FromMinorUnits converts an integer minor-unit amount back to major units.
func FromMinorUnits(minor int64, currency string) decimal.Decimal {
	return decimal.New(minor, -MinorUnitExponent(currency))
}
