package valueobjects

import (
	"unicode/utf8"

	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
)

const (
	NameMinLength = 3
	NameMaxLength = 50
)

// Name is a length-bounded display name
type Name struct {
	value string
}

// NewName creates a Name whose rune length lies in [NameMinLength, NameMaxLength]
func NewName(value string) (Name, error) {
	length := utf8.RuneCountInString(value)
	if length < NameMinLength || length > NameMaxLength {
		return Name{}, pkgerrors.NewNameLength(length, NameMinLength, NameMaxLength)
	}
	return Name{value: value}, nil
}

// String returns the name
func (n Name) String() string {
	return n.value
}

// Equals checks if two names are equal
func (n Name) Equals(other Name) bool {
	return n.value == other.value
}
