// Package fileops holds the small file utilities shipped next to freespace:
// directory change, chunked copy, byte-shift cipher, concatenation and
// working directory printing.
package fileops

import (
	"errors"
	"fmt"
)

// ErrUsage is returned for malformed command lines
var ErrUsage = errors.New("usage")

// Step identifies which stage of a file utility failed
type Step int

// Steps double as process exit statuses
const (
	StepUsage  Step = 1
	StepOpen   Step = 2
	StepCreate Step = 3
	StepRead   Step = 4
	StepWrite  Step = 5
)

func (s Step) String() string {
	switch s {
	case StepUsage:
		return "usage"
	case StepOpen:
		return "open"
	case StepCreate:
		return "create"
	case StepRead:
		return "read"
	case StepWrite:
		return "write"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// StepError records the failing stage, the path involved and the cause
type StepError struct {
	Step Step
	Path string
	Err  error
}

// Error returns the error message
func (e *StepError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *StepError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by this package to a process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var se *StepError
	if errors.As(err, &se) {
		return int(se.Step)
	}
	return 1
}
