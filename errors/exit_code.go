package errors

import (
	"github.com/cockroachdb/errors"
)

// Exit codes returned by the CLI.
const (
	ExitCodeSuccess = 0
	ExitCodeFailure = 1
	// ExitCodeUsage is returned for configuration and usage problems such as unknown styles.
	ExitCodeUsage = 2
)

// exitCoder wraps an error and specifies an exit code.
type exitCoder struct {
	cause error
	code  int
}

func (e *exitCoder) Error() string {
	return e.cause.Error()
}

func (e *exitCoder) Cause() error {
	return e.cause
}

func (e *exitCoder) Unwrap() error {
	return e.cause
}

// ExitCode returns the exit code.
func (e *exitCoder) ExitCode() int {
	return e.code
}

// WithExitCode attaches an exit code to an error.
// The exit code can be retrieved later using GetExitCode.
func WithExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &exitCoder{
		cause: err,
		code:  code,
	}
}

// GetExitCode extracts the exit code from an error chain.
// Returns 0 if err is nil, the attached exit code if one exists,
// ExitCodeUsage for configuration errors, and 1 otherwise.
func GetExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}

	var ec *exitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}

	if errors.IsAny(err, ErrTableStyleNotDefined, ErrInvalidColumnSpec, ErrUnsupportedFormat, ErrLoadConfig, ErrInvalidLogLevel) {
		return ExitCodeUsage
	}

	return ExitCodeFailure
}
