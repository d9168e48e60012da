// SPDX-License-Identifier: MIT
package lexer

// REF: https://gitlab.com/fisherprime/go-ddbms/-/blob/master/internal/v1/lexer.go

import (
	"context"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
)

type (
	// state of the Lexer's lookahead buffer.
	state int

	// Lexer hands out the Tokens of a source one at a time, with one Token of lookahead.
	//
	// Tokens are read on demand; a Lexer is meant for a single goroutine.
	Lexer struct {
		debug  bool
		logger logrus.FieldLogger

		// cursor is the source, owned by the Lexer.
		cursor *Cursor
		// classes holds the classifiers in priority order.
		classes []class

		state   state
		current Token

		// err is the error that ended the token sequence.
		err error
	}
)

const (
	stateEmpty state = iota
	stateBuffered
)

const streamBufferSize = 10

// New creates a Lexer for the source string.
func New(source string, opts ...Option) (*Lexer, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Lexer{
		debug:   cfg.Debug,
		logger:  cfg.Logger,
		cursor:  NewCursor(source),
		classes: newClassTable(cfg, cfg.Keywords),
	}, nil
}

// Logger obtains the logger.
func (l *Lexer) Logger() logrus.FieldLogger { return l.logger }

// Peek returns the next Token without consuming it.
//
// ok is false at the end of the input. Repeated calls return the same Token until [Lexer.Next].
func (l *Lexer) Peek() (tok Token, ok bool, err error) {
	if l.state == stateBuffered {
		return l.current, true, nil
	}

	if tok, ok, err = l.readNext(); !ok || err != nil {
		return
	}
	l.current, l.state = tok, stateBuffered

	return
}

// Next consumes & returns the next Token.
//
// ok is false at the end of the input.
func (l *Lexer) Next() (tok Token, ok bool, err error) {
	if l.state == stateBuffered {
		tok = l.current
		l.current, l.state = Token{}, stateEmpty

		return tok, true, nil
	}

	return l.readNext()
}

// AtEnd reports whether the token sequence is exhausted.
func (l *Lexer) AtEnd() (bool, error) {
	_, ok, err := l.Peek()
	return !ok, err
}

// readNext classifies & reads a Token from the cursor, skipping whitespace & comments.
func (l *Lexer) readNext() (tok Token, ok bool, err error) {
	if l.err != nil {
		return Token{}, false, l.err
	}

	defer func() {
		if err == nil {
			return
		}
		l.err = err

		if l.debug {
			l.logger.Debugf("lexer failure: %v\ncursor: %s", err, spew.Sdump(l.cursor))
		}
	}()

	for {
		l.cursor.AcceptWhile(isWhitespace)
		if l.cursor.AtEnd() {
			return
		}

		var cls *class
		for index := range l.classes {
			if l.classes[index].is(l.cursor) {
				cls = &l.classes[index]
				break
			}
		}

		if cls == nil {
			r, _ := l.cursor.Peek()
			err = l.cursor.Fail(ErrUnexpectedCharacter, "invalid character: %q", r)

			return
		}

		pos, start := l.cursor.Pos(), l.cursor.index()
		if tok, err = cls.read(l.cursor, pos); err != nil {
			return
		}
		if l.cursor.index() == start {
			err = l.cursor.Fail(ErrUnterminatedClassRead, "%s reader consumed nothing", cls.name)
			return
		}

		if cls.skip {
			continue
		}

		if l.debug {
			l.logger.Debug("lexer token: ", tok)
		}

		return tok, true, nil
	}
}

// Stream lexes the remaining input in a goroutine, sending the Tokens over the returned channel.
//
// The channel is closed at the end of the input or after sending an Item carrying an error.
// The Lexer must not be used directly once streaming.
func (l *Lexer) Stream(ctx context.Context) <-chan Item {
	c := make(chan Item, streamBufferSize)

	go func() {
		defer close(c)

		for {
			var item Item

			select {
			case <-ctx.Done():
				item.Err = fmt.Errorf("lexer stream: %w", ctx.Err())
			default:
				var ok bool
				if item.Token, ok, item.Err = l.Next(); item.Err == nil && !ok {
					return
				}
			}

			select {
			case <-ctx.Done():
				return
			case c <- item:
			}

			if item.Err != nil {
				return
			}
		}
	}()

	return c
}
