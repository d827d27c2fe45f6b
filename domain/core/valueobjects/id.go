package valueobjects

import (
	"github.com/google/uuid"

	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
)

// ID is a value object wrapping a 128-bit identifier
// Value objects are immutable and have no identity beyond their value
type ID struct {
	value uuid.UUID
}

// NewID creates a new random ID
func NewID() ID {
	return ID{value: uuid.New()}
}

// ParseID creates an ID from its canonical string form
func ParseID(s string) (ID, error) {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return ID{}, pkgerrors.NewInvalidID("id", s).WithCause(err)
	}
	return ID{value: parsed}, nil
}

// ParseIDOrNew parses s, or generates a fresh ID when s is empty
func ParseIDOrNew(s string) (ID, error) {
	if s == "" {
		return NewID(), nil
	}
	return ParseID(s)
}

// MustParseID parses s and panics on failure. Intended for tests and constants.
func MustParseID(s string) ID {
	id, err := ParseID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the canonical string representation of the ID
func (id ID) String() string {
	return id.value.String()
}

// Equals checks if two IDs are equal
func (id ID) Equals(other ID) bool {
	return id.value == other.value
}

// IsZero checks if the ID is the zero value
func (id ID) IsZero() bool {
	return id.value == uuid.Nil
}
