// Package expr - error values returned by Parse.
package expr

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyExpression is returned when the source contains no tokens.
	ErrEmptyExpression = errors.New("expr: empty expression")

	// ErrSyntax is the sentinel every *SyntaxError unwraps to.
	// Match with errors.Is(err, ErrSyntax).
	ErrSyntax = errors.New("expr: syntax error")
)

// SyntaxError describes a single malformed spot in the source.
//
// Pos is the byte offset of the offending token, Msg the reason.
// Parse reports the first error and stops; it never guesses a repair.
type SyntaxError struct {
	Pos int
	Msg string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("expr: syntax error at %d: %s", e.Pos, e.Msg)
}

// Unwrap ties SyntaxError to the ErrSyntax sentinel.
func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}
