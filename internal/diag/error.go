package diag

import (
	"errors"
	"fmt"

	"occ/internal/source"
)

// Error is a fatal lexical or syntax error. It aborts the whole parse.
type Error struct {
	Code    Code
	Span    source.Span
	Message string
	Notes   []Note
	// Rest is the unconsumed source starting at Span.Start, for lexical errors.
	Rest string
}

func (e *Error) Error() string {
	if e.Code.IsLexical() && e.Rest != "" {
		return fmt.Sprintf("%s at %s: %s (remaining input %q)", e.Code.ID(), e.Span, e.Message, e.Rest)
	}
	return fmt.Sprintf("%s at %s: %s", e.Code.ID(), e.Span, e.Message)
}

// Lexical builds a lexical error.
func Lexical(code Code, sp source.Span, rest, msg string) *Error {
	return &Error{Code: code, Span: sp, Message: msg, Rest: rest}
}

// Syntax builds a syntax error.
func Syntax(code Code, sp source.Span, msg string) *Error {
	return &Error{Code: code, Span: sp, Message: msg}
}

// IsLexical reports whether err wraps a lexical *Error.
func IsLexical(err error) bool {
	var de *Error
	return errors.As(err, &de) && de.Code.IsLexical()
}

// IsSyntax reports whether err wraps a syntax *Error.
func IsSyntax(err error) bool {
	var de *Error
	return errors.As(err, &de) && de.Code.IsSyntax()
}

// AsError extracts the *Error wrapped by err.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
