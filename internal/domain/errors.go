package domain

import (
	"errors"
	"strings"
)

// Sentinel errors for booking operations. Callers match them with errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation failed")
	ErrSlotConflict     = errors.New("slot already booked")
	ErrStoreUnavailable = errors.New("booking store unavailable")
)

// ValidationError lists every problem found in a booking request.
// It matches ErrValidation.
type ValidationError struct {
	Problems []string
}

func NewValidationError(problems ...string) *ValidationError {
	return &ValidationError{Problems: problems}
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 0 {
		return ErrValidation.Error()
	}
	return ErrValidation.Error() + ": " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// SlotConflictError carries the requested slot labels that are already claimed
// on the venue/date. It matches ErrSlotConflict.
type SlotConflictError struct {
	Slots []string
}

func (e *SlotConflictError) Error() string {
	return ErrSlotConflict.Error() + ": " + strings.Join(e.Slots, ", ")
}

func (e *SlotConflictError) Unwrap() error { return ErrSlotConflict }
