// SPDX-License-Identifier: MIT
package lexer

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

type (
	// ValidationFunction type for functions that validate rune identities
	ValidationFunction func(rune) bool

	// Position locates a character in the source.
	Position struct {
		Line   int // 1-based line number.
		Column int // 1-based column, counted in runes.
		Offset int // 0-based byte offset.
	}

	// Cursor is a read-only view over a source string that hands out runes one at a time.
	//
	// The cursor tracks the line & column of the next rune; it is never reset.
	Cursor struct {
		// buffer holds the runes of the source.
		buffer []rune
		// bufferIndex is the current buffer position.
		bufferIndex int

		offset int
		line   int
		// column counts the runes consumed on the current line.
		column int
	}
)

const emptyRune rune = 0

// NewCursor creates a Cursor over source.
func NewCursor(source string) *Cursor {
	return &Cursor{
		buffer: []rune(source),
		line:   1,
	}
}

// String renders the Position as line:column.
func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// Pos reports the Position of the rune under the cursor.
func (c *Cursor) Pos() Position {
	return Position{Line: c.line, Column: c.column + 1, Offset: c.offset}
}

// Peek returns the rune under the cursor without consuming it.
//
// ok is false at the end of the input.
func (c *Cursor) Peek() (r rune, ok bool) { return c.PeekAt(0) }

// PeekAt returns the rune n places past the cursor without consuming anything.
func (c *Cursor) PeekAt(n int) (r rune, ok bool) {
	index := c.bufferIndex + n
	if n < 0 || index >= len(c.buffer) {
		return emptyRune, false
	}

	return c.buffer[index], true
}

// Consume returns the rune under the cursor & advances past it.
//
// The cursor doesn't move at the end of the input.
func (c *Cursor) Consume() (r rune, ok bool) {
	if r, ok = c.Peek(); !ok {
		return
	}

	c.bufferIndex++
	c.offset += utf8.RuneLen(r)

	if r == '\n' {
		c.line++
		c.column = 0
		return
	}
	c.column++

	return
}

// AtEnd reports whether the input is exhausted.
func (c *Cursor) AtEnd() bool {
	_, ok := c.Peek()
	return !ok
}

// AcceptWhile consumes runes while fn holds, returning the consumed text.
func (c *Cursor) AcceptWhile(fn ValidationFunction) string {
	start := c.bufferIndex
	for {
		r, ok := c.Peek()
		if !ok || !fn(r) {
			break
		}
		c.Consume()
	}

	return string(c.buffer[start:c.bufferIndex])
}

// Fail creates an [*Error] of kind err positioned at the rune under the cursor.
func (c *Cursor) Fail(err error, format string, args ...interface{}) error {
	return &Error{
		Err: err,
		Pos: c.Pos(),
		Msg: fmt.Sprintf(format, args...),
	}
}

// index obtains the buffer position, used to detect readers that made no progress.
func (c *Cursor) index() int { return c.bufferIndex }
