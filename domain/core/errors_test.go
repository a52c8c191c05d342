package core

import (
	"errors"
	"testing"
)

func TestErrorConstructorsWrapSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"data unavailable", NewDataUnavailableError("Cleaned.csv", errors.New("no such file")), ErrDataUnavailable},
		{"data unavailable without cause", NewDataUnavailableError("Cleaned.csv", nil), ErrDataUnavailable},
		{"column missing", NewColumnMissingError("device_type"), ErrColumnMissing},
		{"column type", NewColumnTypeError("device_type", "numeric", "categorical"), ErrColumnType},
		{"invalid flag", NewInvalidFlagError("flag", 3, "2"), ErrInvalidFlag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("Expected %v to wrap %v", tt.err, tt.sentinel)
			}
		})
	}

	if !IsDataUnavailable(NewDataUnavailableError("x.csv", nil)) {
		t.Error("IsDataUnavailable should match wrapped sentinel")
	}
	if !IsColumnError(NewColumnTypeError("a", "numeric", "boolean")) {
		t.Error("IsColumnError should match column type errors")
	}
	if IsColumnError(NewInvalidFlagError("flag", 0, "x")) {
		t.Error("IsColumnError should not match flag errors")
	}
}
