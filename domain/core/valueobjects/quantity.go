package valueobjects

import (
	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
)

// Quantity bounds how many times something may be picked
type Quantity struct {
	minPermitted int
	maxPermitted int
}

// NewQuantity requires min >= 0, max > 0 and max >= min
func NewQuantity(minPermitted, maxPermitted int) (Quantity, error) {
	if minPermitted < 0 {
		return Quantity{}, pkgerrors.NewQuantityMinNegative(minPermitted)
	}
	if maxPermitted <= 0 {
		return Quantity{}, pkgerrors.NewQuantityMaxNotPositive(maxPermitted)
	}
	if maxPermitted < minPermitted {
		return Quantity{}, pkgerrors.NewQuantityMaxLessThanMin(minPermitted, maxPermitted)
	}
	return Quantity{minPermitted: minPermitted, maxPermitted: maxPermitted}, nil
}

// MinPermitted returns the lower bound
func (q Quantity) MinPermitted() int {
	return q.minPermitted
}

// MaxPermitted returns the upper bound
func (q Quantity) MaxPermitted() int {
	return q.maxPermitted
}

// Equals checks if two quantities are equal
func (q Quantity) Equals(other Quantity) bool {
	return q.minPermitted == other.minPermitted && q.maxPermitted == other.maxPermitted
}
