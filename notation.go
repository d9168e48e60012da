// SPDX-License-Identifier: MIT

// Package notation tokenizes sources of the loop notation language.
//
// The heavy lifting happens in the lexer package; this package drains lexers into Token lists,
// one source at a time or many on a worker pool.
package notation

import (
	"context"
	"fmt"

	"gitlab.com/fisherprime/notation/lexer"
)

// List is a type wrapper for []lexer.Token.
type List []lexer.Token

// Tokenize reads every Token of source.
//
// On failure the Tokens preceding the error are returned alongside it.
func Tokenize(ctx context.Context, source string, opts ...lexer.Option) (tokens List, err error) {
	l, err := lexer.New(source, opts...)
	if err != nil {
		return
	}

	for {
		select {
		case <-ctx.Done():
			err = fmt.Errorf("tokenize: %w", ctx.Err())
			return
		default:
			tok, ok, e := l.Next()
			if e != nil {
				err = e
				return
			}
			if !ok {
				return
			}

			tokens = append(tokens, tok)
		}
	}
}

// Kinds lists the Kind of each Token.
func (l List) Kinds() []lexer.Kind {
	kinds := make([]lexer.Kind, len(l))
	for index := range l {
		kinds[index] = l[index].Kind
	}

	return kinds
}

// Texts lists the source text of each Token.
func (l List) Texts() []string {
	texts := make([]string, len(l))
	for index := range l {
		texts[index] = l[index].Text
	}

	return texts
}
