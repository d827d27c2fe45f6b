package valueobjects

import (
	"strings"

	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
)

// Status represents the availability of a catalog element
type Status string

const (
	StatusAvailable   Status = "AVAILABLE"
	StatusUnavailable Status = "UNAVAILABLE"
)

// ParseStatus parses a status name, case-insensitively
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusAvailable:
		return StatusAvailable, nil
	case StatusUnavailable:
		return StatusUnavailable, nil
	default:
		return "", pkgerrors.NewStatusInvalid(s)
	}
}

// IsAvailable reports whether the element can be selected
func (s Status) IsAvailable() bool {
	return s == StatusAvailable
}

func (s Status) String() string {
	return string(s)
}
