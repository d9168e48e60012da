// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"fmt"
)

// Error is a lexical error tagged with the position it was detected at.
//
// Err holds one of the lexing sentinel errors; use [errors.Is] to test for it.
type Error struct {
	Err error
	Pos Position
	Msg string
}

// Lexing errors.
var (
	ErrUnexpectedCharacter   = errors.New("unexpected character")
	ErrMalformedNumber       = errors.New("malformed number")
	ErrUnterminatedClassRead = errors.New("unterminated class read")

	ErrInvalidConfig = errors.New("invalid lexer config")
)

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%v (%s)", e.Err, e.Pos)
	}

	return fmt.Sprintf("%v: %s (%s)", e.Err, e.Msg, e.Pos)
}

// Unwrap exposes the sentinel error.
func (e *Error) Unwrap() error { return e.Err }
