package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Validation errors
	ErrInvalidProbability = errors.New("probability must be in [0, 1]")
	ErrNegativeLength     = errors.New("polymer length cannot be negative")
	ErrInvalidTrialCount  = errors.New("trial count must be positive")
	ErrInvalidAlphabet    = errors.New("polymer contains symbols outside {G, L}")

	// Calculation errors
	ErrDivisionByZero = errors.New("division by zero: polymer contains no L monomers")
	ErrEmptyBatch     = errors.New("cannot aggregate an empty batch")
)

// Error constructors with context
func NewProbabilityError(p float64) error {
	return fmt.Errorf("%w: got %v", ErrInvalidProbability, p)
}

func NewLengthError(n int) error {
	return fmt.Errorf("%w: got %d", ErrNegativeLength, n)
}

func NewTrialCountError(n int) error {
	return fmt.Errorf("%w: got %d", ErrInvalidTrialCount, n)
}

// Error checking helpers
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidProbability) ||
		errors.Is(err, ErrNegativeLength) ||
		errors.Is(err, ErrInvalidTrialCount) ||
		errors.Is(err, ErrInvalidAlphabet)
}

func IsDivisionByZero(err error) bool {
	return errors.Is(err, ErrDivisionByZero)
}
