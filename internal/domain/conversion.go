package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ConvertedAmountPlaces is the number of decimal places in ConversionResult.ConvertedAmount.
const ConvertedAmountPlaces = 2

// Bounds on accepted amounts. Formatting an amount costs time and memory
// proportional to its digit count, so both ends are capped.
const (
	// MaxAmountLength is the longest raw amount string accepted.
	MaxAmountLength = 64
	// MaxAmountIntegerDigits is the most digits allowed before the decimal point.
	MaxAmountIntegerDigits = 15
	// MaxAmountFractionDigits is the most digits allowed after the decimal point.
	MaxAmountFractionDigits = 20
)

// ConversionRequest carries the raw query values of a conversion.
type ConversionRequest struct {
	From   string `validate:"required"`
	To     string `validate:"required"`
	Amount string `validate:"required"`
}

// Complete reports whether every field is present and non-empty.
func (r ConversionRequest) Complete() bool {
	return r.From != "" && r.To != "" && r.Amount != ""
}

// ParseAmount parses the amount as an exact decimal.
// Non-numeric or out-of-range input yields a *ValidationError.
func (r ConversionRequest) ParseAmount() (decimal.Decimal, error) {
	raw := strings.TrimSpace(r.Amount)
	if len(raw) > MaxAmountLength {
		return decimal.Zero, NewValidationError("amount", "is too long", nil)
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, NewValidationError("amount", "must be a number", nil)
	}

	// Checked on exponent and coefficient length only; comparing against a
	// bound would rescale and expand the very number being rejected.
	exp := int64(amount.Exponent())
	if exp < -MaxAmountFractionDigits {
		return decimal.Zero, NewValidationError("amount", "has too many decimal places", nil)
	}
	digits := int64(len(amount.Coefficient().Text(10)))
	if amount.Sign() < 0 {
		digits--
	}
	if digits+exp > MaxAmountIntegerDigits {
		return decimal.Zero, NewValidationError("amount", "is too large", nil)
	}
	return amount, nil
}

// ConversionResult is the outcome of a successful conversion.
// OriginalAmount echoes the caller's input verbatim.
type ConversionResult struct {
	From            string  `json:"from"`
	To              string  `json:"to"`
	OriginalAmount  string  `json:"originalAmount"`
	ConvertedAmount string  `json:"convertedAmount"`
	ConversionRate  float64 `json:"conversionRate"`
}

// RateTable maps target currency codes to rates for one base currency.
// It lives for a single request.
type RateTable struct {
	Base  string
	Rates map[string]float64
}

// Rate returns the rate for code and whether it was present.
func (t *RateTable) Rate(code string) (float64, bool) {
	if t == nil || t.Rates == nil {
		return 0, false
	}
	rate, ok := t.Rates[code]
	return rate, ok
}

// ConvertAmount multiplies amount by rate and formats the product with
// ConvertedAmountPlaces decimals, rounding half away from zero.
func ConvertAmount(amount decimal.Decimal, rate float64) string {
	return amount.Mul(decimal.NewFromFloat(rate)).StringFixed(ConvertedAmountPlaces)
}
