package interp

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrUndefinedVariable = errors.New("undefined variable")
	ErrUndefinedFunction = errors.New("undefined function")
	ErrStepLimit         = errors.New("step limit exceeded")
)

// RuntimeError is a failure that aborted execution, tagged with the line of
// the innermost statement that was running.
type RuntimeError struct {
	Line int
	Err  error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("Runtime Error: %v\nOn line: %d", e.Err, e.Line)
}

// Cause lets errors.Cause reach the sentinel.
func (e *RuntimeError) Cause() error { return e.Err }

func (e *RuntimeError) Unwrap() error { return e.Err }

func atLine(line int, err error) error {
	if err == nil {
		return nil
	}
	var re *RuntimeError
	if errors.As(err, &re) {
		return err
	}
	return &RuntimeError{Line: line, Err: err}
}
