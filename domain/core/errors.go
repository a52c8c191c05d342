package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Load errors
	ErrDataUnavailable = errors.New("dataset unavailable")

	// Column errors
	ErrColumnMissing = errors.New("column not found")
	ErrColumnType    = errors.New("column has wrong type")

	// Flag errors
	ErrInvalidFlag = errors.New("invalid flag value")
)

// Error constructors with context
func NewDataUnavailableError(path string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %s", ErrDataUnavailable, path)
	}
	return fmt.Errorf("%w: %s: %v", ErrDataUnavailable, path, err)
}

func NewColumnMissingError(column string) error {
	return fmt.Errorf("%w: %q", ErrColumnMissing, column)
}

func NewColumnTypeError(column, want, got string) error {
	return fmt.Errorf("%w: %q is %s, want %s", ErrColumnType, column, got, want)
}

func NewInvalidFlagError(column string, row int, value string) error {
	return fmt.Errorf("%w: column %q row %d has %q (want 0 or 1)", ErrInvalidFlag, column, row, value)
}

// Error checking helpers
func IsDataUnavailable(err error) bool {
	return errors.Is(err, ErrDataUnavailable)
}

func IsColumnError(err error) bool {
	return errors.Is(err, ErrColumnMissing) || errors.Is(err, ErrColumnType)
}
