package cli

import (
	"errors"

	"github.com/0xcro3dile/mapextract/internal/domain/usecases"
)

// Process exit codes.
const (
	ExitOK              = 0
	ExitFailure         = 1
	ExitSelectionFormat = 1
	ExitSelectionRange  = 2
)

// ExitCode maps an error returned by the command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, usecases.ErrSelectionFormat):
		return ExitSelectionFormat
	case errors.Is(err, usecases.ErrSelectionRange):
		return ExitSelectionRange
	default:
		return ExitFailure
	}
}

// Message returns the operator-facing text for err.
func Message(err error) string {
	switch {
	case errors.Is(err, usecases.ErrSelectionFormat):
		return "Incorrect region selection"
	case errors.Is(err, usecases.ErrSelectionRange):
		return "Region out of bounds"
	default:
		return err.Error()
	}
}
