package helpers

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// amountScale is the number of decimal places a display amount carries; the
// engine itself only ever sees smallest-unit integers.
const amountScale = 2

var (
	ErrMalformedAmount = errors.New("MALFORMED_AMOUNT")
	ErrTooPrecise      = errors.New("AMOUNT_TOO_PRECISE")
	ErrAmountTooLarge  = errors.New("AMOUNT_TOO_LARGE")
)

// ParseAmount converts a decimal display string ("12.50") into smallest
// currency units (1250). Fractions below the smallest unit are rejected, not
// rounded.
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrMalformedAmount
	}
	shifted := d.Shift(amountScale)
	if !shifted.IsInteger() {
		return 0, ErrTooPrecise
	}
	if shifted.Cmp(decimal.NewFromInt(math.MaxInt64)) > 0 ||
		shifted.Cmp(decimal.NewFromInt(math.MinInt64)) < 0 {
		return 0, ErrAmountTooLarge
	}
	return shifted.IntPart(), nil
}

// FormatAmount renders smallest currency units back to a display string.
func FormatAmount(units int64) string {
	return decimal.NewFromInt(units).Shift(-amountScale).StringFixed(amountScale)
}
