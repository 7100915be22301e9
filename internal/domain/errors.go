package domain

import (
	"errors"
	"fmt"
	"syscall"
)

// Common domain errors
var (
	ErrUnsupportedPlatform = errors.New("capacity query not supported on this platform")
	ErrInvalidLength       = errors.New("invalid file length")
	ErrJournalDisabled     = errors.New("artifact journal is disabled")
	ErrInvalidConfig       = errors.New("invalid configuration")
)

// Op identifies the filesystem operation that failed during a session
type Op string

const (
	OpProbe  Op = "probe"
	OpCreate Op = "create"
	OpResize Op = "resize"
	OpSeek   Op = "seek"
	OpWrite  Op = "write"
	OpClose  Op = "close"
	OpDelete Op = "delete"
	OpInput  Op = "read input"
)

// exitCodes maps a failing operation to the process exit status.
var exitCodes = map[Op]int{
	OpProbe:  1,
	OpCreate: 2,
	OpResize: 3,
	OpSeek:   4,
	OpWrite:  5,
	OpClose:  6,
	OpDelete: 6,
	OpInput:  7,
}

// exitCodeConfig is returned for configuration failures.
const exitCodeConfig = 8

// OpError records a failed filesystem mutation and the path it targeted.
type OpError struct {
	Op   Op
	Path string
	Err  error
}

// Error returns the error message
func (e *OpError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *OpError) Unwrap() error {
	return e.Err
}

// NewOpError creates a new operation error
func NewOpError(op Op, path string, err error) *OpError {
	return &OpError{Op: op, Path: path, Err: err}
}

// CapacityError is returned when the operating system refuses a capacity query.
// Code holds the platform error number, or -1 when none was reported.
type CapacityError struct {
	Path string
	Code int
	Err  error
}

// Error returns the error message
func (e *CapacityError) Error() string {
	if e.Code < 0 {
		return fmt.Sprintf("cannot get free space for %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("cannot get free space for %q: %v (code %d)", e.Path, e.Err, e.Code)
}

// Unwrap returns the underlying error
func (e *CapacityError) Unwrap() error {
	return e.Err
}

// NewCapacityError wraps an OS error, extracting its error number when present.
func NewCapacityError(path string, err error) *CapacityError {
	code := -1
	var errno syscall.Errno
	if errors.As(err, &errno) {
		code = int(errno)
	}
	return &CapacityError{Path: path, Code: code, Err: err}
}

// IsCapacityError returns true if err is, or wraps, a CapacityError
func IsCapacityError(err error) bool {
	var ce *CapacityError
	return errors.As(err, &ce)
}

// ExitCode returns the process exit status for an error that ended a session.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var oe *OpError
	if errors.As(err, &oe) {
		if code, ok := exitCodes[oe.Op]; ok {
			return code
		}
	}
	if IsCapacityError(err) || errors.Is(err, ErrUnsupportedPlatform) {
		return exitCodes[OpProbe]
	}
	if errors.Is(err, ErrInvalidConfig) {
		return exitCodeConfig
	}
	return 1
}
