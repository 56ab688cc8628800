// SPDX-License-Identifier: MIT

package heap

import (
	"errors"
	"fmt"
)

// Variant selects the ordering a mutating call maintains.
type Variant int

const (
	// Max keeps the largest value at the root.
	Max Variant = iota

	// Min keeps the smallest value at the root.
	Min
)

// String returns "max" or "min".
func (v Variant) String() string {
	switch v {
	case Max:
		return "max"
	case Min:
		return "min"
	default:
		return "unknown"
	}
}

// ErrInvalidCapacity is returned by New when capacity < 1.
var ErrInvalidCapacity = errors.New("heap: capacity must be at least 1")

// ErrUnknownVariant is returned by ParseVariant for unrecognized names.
var ErrUnknownVariant = errors.New("heap: unknown variant")

// ParseVariant maps "max" and "min" onto their Variant.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "max":
		return Max, nil
	case "min":
		return Min, nil
	default:
		return Max, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}
