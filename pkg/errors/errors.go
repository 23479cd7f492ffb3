// Package errors defines the error taxonomy shared by all fskit packages.
// Callers match against the sentinel errors with errors.Is; operation
// functions wrap them with path context before returning.
package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
)

// Common error types.
var (
	// ErrNotFound is returned when a path does not exist where existence
	// was required (delete, attribute reads, some moves).
	ErrNotFound = fmt.Errorf("no such file or directory")

	// ErrAlreadyExists is returned when a create, copy, or move hits an
	// existing target and no overwrite option was given.
	ErrAlreadyExists = fmt.Errorf("file already exists")

	// ErrInvalidPermissions is returned for malformed octal or symbolic
	// permission input.
	ErrInvalidPermissions = fmt.Errorf("invalid permissions")

	// ErrUnsupported is returned when the platform or filesystem cannot
	// perform the requested operation, e.g. an atomic move across
	// filesystems or a birth-time query where none is recorded.
	ErrUnsupported = fmt.Errorf("operation not supported")

	// ErrIO is the catch-all for underlying OS failures.
	ErrIO = fmt.Errorf("i/o failure")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// FromOS translates an error returned by the os package into the fskit
// taxonomy while keeping the original error in the chain. Errors that
// already carry a taxonomy sentinel pass through unchanged.
func FromOS(err error) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, ErrNotFound),
		stderrors.Is(err, ErrAlreadyExists),
		stderrors.Is(err, ErrInvalidPermissions),
		stderrors.Is(err, ErrUnsupported),
		stderrors.Is(err, ErrIO):
		return err
	case stderrors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case stderrors.Is(err, fs.ErrExist):
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	case stderrors.Is(err, stderrors.ErrUnsupported), stderrors.Is(err, os.ErrInvalid):
		return fmt.Errorf("%w: %w", ErrUnsupported, err)
	default:
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
}
