package errs

import (
	"errors"
	"fmt"
)

// EmptyError reports a required expression, argument or value that is absent.
type EmptyError struct {
	What string
}

func (e *EmptyError) Error() string {
	return fmt.Sprintf("empty %s", e.What)
}

// Emptyf builds an EmptyError from a format string.
func Emptyf(format string, args ...any) error {
	return &EmptyError{What: fmt.Sprintf(format, args...)}
}

// TypeMismatchError reports a value whose runtime type differs from the
// shape an operation expects.
type TypeMismatchError struct {
	Context  string
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Actual)
	}
	return fmt.Sprintf("%s: type mismatch: expected %s, got %s", e.Context, e.Expected, e.Actual)
}

// TypeMismatch builds a TypeMismatchError.
func TypeMismatch(context, expected, actual string) error {
	return &TypeMismatchError{Context: context, Expected: expected, Actual: actual}
}

// MatchError reports a match unit of the wrong kind reaching a kind-specific
// handler, or a unit list that is not homogeneous.
type MatchError struct {
	Msg string
}

func (e *MatchError) Error() string {
	return "match mismatch: " + e.Msg
}

// Matchf builds a MatchError from a format string.
func Matchf(format string, args ...any) error {
	return &MatchError{Msg: fmt.Sprintf(format, args...)}
}

// ArityError reports a wrong number of arguments. AtLeast marks Expected as a
// lower bound.
type ArityError struct {
	What     string
	Expected int
	Actual   int
	AtLeast  bool
	Detail   string
}

func (e *ArityError) Error() string {
	bound := ""
	if e.AtLeast {
		bound = "at least "
	}
	msg := fmt.Sprintf("%s: expected %s%d, got %d", e.What, bound, e.Expected, e.Actual)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

// SyntaxError wraps an evaluation engine rejection of an expression.
type SyntaxError struct {
	Expression string
	Err        error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid expression %q: %v", e.Expression, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// IsEmpty reports whether err carries an EmptyError.
func IsEmpty(err error) bool {
	var target *EmptyError
	return errors.As(err, &target)
}

// IsTypeMismatch reports whether err carries a TypeMismatchError.
func IsTypeMismatch(err error) bool {
	var target *TypeMismatchError
	return errors.As(err, &target)
}

// IsMatch reports whether err carries a MatchError.
func IsMatch(err error) bool {
	var target *MatchError
	return errors.As(err, &target)
}

// IsArity reports whether err carries an ArityError.
func IsArity(err error) bool {
	var target *ArityError
	return errors.As(err, &target)
}

// IsSyntax reports whether err carries a SyntaxError.
func IsSyntax(err error) bool {
	var target *SyntaxError
	return errors.As(err, &target)
}
