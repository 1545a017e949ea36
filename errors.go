package exalge

import (
	"errors"
	"fmt"
)

// Error classes returned by this package. They are matched with errors.Is.
var (
	// ErrInvalidArgument reports an absent or empty required input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState reports an operation against an object that cannot serve it, like an empty ratio table.
	ErrInvalidState = errors.New("invalid state")
	// ErrArithmetic reports an undefined arithmetic operation, like a division by zero.
	ErrArithmetic = errors.New("arithmetic error")
)

// FormatError reports malformed persisted input.
//
// Line and Column are 1-based. Column is 0 when the error concerns a whole line.
type FormatError struct {
	Source string // file name or format name, for the message only.
	Line   int
	Column int
	Err    error
}

func (e *FormatError) Error() string {
	src := e.Source
	if src == "" {
		src = "<input>"
	}
	if e.Column > 0 {
		return fmt.Sprintf("parse error %s:%d:%d: %v", src, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("parse error %s:%d: %v", src, e.Line, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// formatErrorf creates a FormatError at the given location.
func formatErrorf(source string, line, col int, format string, args ...any) *FormatError {
	return &FormatError{Source: source, Line: line, Column: col, Err: fmt.Errorf(format, args...)}
}

// invalidArgument wraps ErrInvalidArgument with a message.
func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
