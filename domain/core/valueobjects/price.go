package valueobjects

import (
	"github.com/shopspring/decimal"

	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
)

// PriceScale is the number of decimal places a price is canonicalized to
const PriceScale = 2

// Price is a non-negative amount canonicalized to two decimal places,
// rounding toward positive infinity.
type Price struct {
	value decimal.Decimal
}

// NewPrice canonicalizes value and rejects it when negative after rounding
func NewPrice(value decimal.Decimal) (Price, error) {
	rounded := value.RoundCeil(PriceScale)
	if rounded.IsNegative() {
		return Price{}, pkgerrors.NewPriceNegative(value.String())
	}
	return Price{value: rounded}, nil
}

// ParsePrice parses a decimal string and builds a Price from it
func ParsePrice(s string) (Price, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, pkgerrors.NewPriceInvalid(s, err)
	}
	return NewPrice(value)
}

// ZeroPrice returns a price of 0.00
func ZeroPrice() Price {
	return Price{value: decimal.Zero}
}

// Value returns the canonical decimal value
func (p Price) Value() decimal.Decimal {
	return p.value
}

// String returns the canonical value with exactly two decimal places
func (p Price) String() string {
	return p.value.StringFixed(PriceScale)
}

// IsZero reports whether the price is 0.00
func (p Price) IsZero() bool {
	return p.value.IsZero()
}

// Equals compares canonical values, so 1.5 and 1.50 are equal
func (p Price) Equals(other Price) bool {
	return p.value.Equal(other.value)
}
