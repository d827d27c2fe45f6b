package valueobjects

import (
	"unicode/utf8"

	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
)

const (
	DescriptionMinLength = 3
	DescriptionMaxLength = 1000
)

// Description is an optional free-text description
type Description struct {
	value string
}

// NewDescription creates a Description whose rune length lies in
// [DescriptionMinLength, DescriptionMaxLength]
func NewDescription(value string) (Description, error) {
	length := utf8.RuneCountInString(value)
	if length < DescriptionMinLength || length > DescriptionMaxLength {
		return Description{}, pkgerrors.NewDescriptionLength(length, DescriptionMinLength, DescriptionMaxLength)
	}
	return Description{value: value}, nil
}

// NewOptionalDescription returns nil for a nil input, otherwise a validated Description
func NewOptionalDescription(value *string) (*Description, error) {
	if value == nil {
		return nil, nil
	}
	d, err := NewDescription(*value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// String returns the description text
func (d Description) String() string {
	return d.value
}
