package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrRideUnavailable     = fmt.Errorf("%w: ride is no longer available", ErrConflict)
	ErrVehicleMismatch     = errors.New("vehicle mismatch")
	ErrCreditLimitExceeded = errors.New("credit ride limit exceeded")
	ErrValidation          = errors.New("validation error")
	ErrForbidden           = errors.New("forbidden")
	ErrDriverNotActive     = fmt.Errorf("%w: driver is not active", ErrForbidden)
	ErrInternal            = errors.New("internal error")
)

// StateError is returned when a ride transition is attempted from a status
// that does not allow it.
type StateError struct {
	Current  RideStatus
	Expected []RideStatus
}

func (e *StateError) Error() string {
	expected := make([]string, len(e.Expected))
	for i, s := range e.Expected {
		expected[i] = string(s)
	}
	return fmt.Sprintf("conflict: ride is %s, expected %s", e.Current, strings.Join(expected, " or "))
}

func (e *StateError) Unwrap() error {
	return ErrConflict
}

type VehicleMismatchError struct {
	Required string
	Actual   string
}

func (e *VehicleMismatchError) Error() string {
	return fmt.Sprintf("vehicle mismatch: ride requires %q, driver has %q", e.Required, e.Actual)
}

func (e *VehicleMismatchError) Unwrap() error {
	return ErrVehicleMismatch
}

// Validationf builds an ErrValidation with a message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Internal wraps storage and other unexpected failures with ErrInternal.
// Errors already carrying a business meaning pass through unchanged.
func Internal(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{
		ErrNotFound, ErrConflict, ErrVehicleMismatch, ErrCreditLimitExceeded,
		ErrValidation, ErrForbidden, ErrInternal,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: %w", ErrInternal, err)
}
