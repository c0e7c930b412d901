package session

import (
	"errors"
	"strings"
)

var ErrEmptyPlate = errors.New("plate is required")

const (
	DefaultZone          = "General"
	DefaultPaymentMethod = "efectivo"
)

// Plate is a normalized license plate: trimmed and uppercased. Every entry
// point goes through NewPlate so lookups are case-insensitive.
type Plate struct {
	value string
}

func NewPlate(raw string) (Plate, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if normalized == "" {
		return Plate{}, ErrEmptyPlate
	}
	return Plate{value: normalized}, nil
}

func (p Plate) String() string {
	return p.value
}
