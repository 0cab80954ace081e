package common

import (
	"errors"
	"fmt"
)

var (
	// Input errors, rejected before storage is touched.
	ErrValidation = errors.New("validation error")
	ErrEmptyParty = errors.New("party is empty")

	// Storage lookups.
	ErrNotFound = errors.New("not found")
	ErrCorrupt  = errors.New("corrupt save")

	// Auth errors.
	ErrDuplicateAccount = errors.New("account already exists")
	ErrNoSuchAccount    = errors.New("account not found")
	ErrWrongPassword    = errors.New("wrong password")
	ErrNotAuthenticated = errors.New("not authenticated")
)

// Validationf returns an error matching ErrValidation with a user-facing reason.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// IOError is a filesystem failure with the operation and path it happened on.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// NewIOError wraps err, returning nil when err is nil.
func NewIOError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Path: path, Err: err}
}

// CorruptError reports a save slot whose file exists but does not decode.
// It matches ErrCorrupt with errors.Is.
type CorruptError struct {
	Name string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("save %q is corrupt: %v", e.Name, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

func (e *CorruptError) Is(target error) bool {
	return target == ErrCorrupt
}
