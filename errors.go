package boolfn

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
)

// ErrorKind is the category of an Error.
type ErrorKind int8

const (
	NoError         ErrorKind = iota
	ShapeError                // table length does not match 2^n
	SyntaxError               // malformed token sequence
	EvaluationError           // tree references an unbound variable
)

func (k ErrorKind) String() string {
	switch k {
	case ShapeError:
		return "shape error"
	case SyntaxError:
		return "syntax error"
	case EvaluationError:
		return "evaluation error"
	}
	return "no error"
}

// Reason further qualifies syntax errors.
type Reason int8

const (
	Unspecified Reason = iota
	UnbalancedClose
	UnbalancedOpen
	ArityMismatch
	AdjacentOperands
	EmptyExpression
	IllegalInput
	MisplacedOperator
)

// Error is the error type returned by all fallible operations of this module.
// Clients may branch on Kind (and Reason for syntax errors) without string matching.
//
// Pos is the index of the offending token within the token sequence, or -1 if
// the error is not attributable to a single token.
type Error struct {
	Kind   ErrorKind
	Reason Reason
	Detail string
	Pos    int
}

func (e *Error) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("%s at token %d: %s", e.Kind, e.Pos, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Shape creates a ShapeError.
func Shape(format string, args ...interface{}) *Error {
	return &Error{Kind: ShapeError, Detail: fmt.Sprintf(format, args...), Pos: -1}
}

// Syntax creates a SyntaxError with a reason and a token position.
func Syntax(reason Reason, pos int, format string, args ...interface{}) *Error {
	return &Error{Kind: SyntaxError, Reason: reason, Detail: fmt.Sprintf(format, args...), Pos: pos}
}

// Evaluation creates an EvaluationError.
func Evaluation(format string, args ...interface{}) *Error {
	return &Error{Kind: EvaluationError, Detail: fmt.Sprintf(format, args...), Pos: -1}
}

// KindOf returns the error kind of err, if err is or wraps an *Error.
// It returns NoError otherwise.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return NoError
}

// ReasonOf returns the syntax error reason of err, if any.
func ReasonOf(err error) Reason {
	var e *Error
	if errors.As(err, &e) {
		return e.Reason
	}
	return Unspecified
}
