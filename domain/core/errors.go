package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Validation errors
	ErrOutOfRange   = errors.New("probability out of range")
	ErrInvalidRange = errors.New("invalid interval range")
)

// Error constructors with context
func NewOutOfRangeError(value float64) error {
	return fmt.Errorf("%w: a probability must sit between 0 and 1, provided: %v", ErrOutOfRange, value)
}

func NewInvalidRangeError(lower, upper float64) error {
	return fmt.Errorf("%w: lower bound %v exceeds upper bound %v", ErrInvalidRange, lower, upper)
}

func NewUnorderedBoundError(lower, upper float64) error {
	return fmt.Errorf("%w: bounds %v and %v cannot be ordered", ErrInvalidRange, lower, upper)
}

// Error checking helpers
func IsOutOfRangeError(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}

func IsInvalidRangeError(err error) bool {
	return errors.Is(err, ErrInvalidRange)
}
