package token

import (
	"errors"
	"fmt"
)

var (
	ErrMissingColon        = errors.New("missing `:`")
	ErrKey                 = errors.New("invalid key")
	ErrValue               = errors.New("invalid value")
	ErrEmptyStringBlock    = errors.New("empty string block")
	ErrUnclosedStringBlock = errors.New("unclosed string block")
	ErrFenceTrailing       = errors.New("trailing characters after opening fence")
)

// LineErr attaches a 1-based source line to an error.  All scanner errors
// are LineErrs, so tooling can recover the position with errors.As.
type LineErr struct {
	Line int
	Err  error
}

func (e *LineErr) Error() string {
	return fmt.Sprintf("Line %d: %v", e.Line, e.Err)
}

func (e *LineErr) Unwrap() error {
	return e.Err
}

func AtLine(line int, err error) error {
	return &LineErr{Line: line, Err: err}
}

// ErrLine returns the line an error was reported at, or 0.
func ErrLine(err error) int {
	le := &LineErr{}
	if errors.As(err, &le) {
		return le.Line
	}
	return 0
}
