// SPDX-License-Identifier: MIT
package lexer

import (
	"strconv"
	"unicode"

	"golang.org/x/exp/slices"
)

type (
	// class pairs the predicate recognizing a lexical class's leading rune with its reader.
	class struct {
		name string
		is   func(c *Cursor) bool
		read func(c *Cursor, pos Position) (Token, error)

		// skip marks classes that consume input without producing a Token.
		skip bool
	}
)

// Rune class lookup tables, indexed by rune.
var (
	whitespace = [256]bool{
		' ':  true,
		'\t': true,
		'\r': true,
		'\n': true,
	}

	punctuation = [256]bool{
		'[': true,
		']': true,
		'(': true,
		')': true,
		',': true,
	}

	operators = [256]bool{
		'=': true,
		'+': true,
	}

	markerSymbols = [256]bool{
		'_': true,
		'-': true,
	}
)

// newClassTable builds the classifiers in priority order; the first match wins.
func newClassTable(cfg *Config, keywords []string) []class {
	table := make([]class, 0, 11)

	table = append(table,
		markerClass(KindMeta, cfg.Markers[KindMeta], isMarkerPart, true),
		class{name: "comment", is: isCommentStart, read: skipComment, skip: true},
		class{name: "identifier", is: identStart(cfg.Sigils), read: readIdent(keywords)},
		markerClass(KindSection, cfg.Markers[KindSection], isMarkerPart, true),
		markerClass(KindBeat, cfg.Markers[KindBeat], isBeatPart, false),
		markerClass(KindChord, cfg.Markers[KindChord], isChordPart, true),
		markerClass(KindScale, cfg.Markers[KindScale], isMarkerPart, true),
		markerClass(KindColor, cfg.Markers[KindColor], isMarkerPart, true),
		class{name: "punctuation", is: peekIs(isPunctuation), read: readSingle(KindPunctuation)},
		class{name: "operator", is: peekIs(isOperator), read: readSingle(KindOperator)},
		class{name: "number", is: peekIs(isNumeric), read: readNumber},
	)

	return table
}

// peekIs adapts a rune predicate to test the rune under the cursor.
func peekIs(fn ValidationFunction) func(c *Cursor) bool {
	return func(c *Cursor) bool {
		r, ok := c.Peek()
		return ok && fn(r)
	}
}

func isCommentStart(c *Cursor) bool {
	first, _ := c.PeekAt(0)
	second, _ := c.PeekAt(1)

	return first == commentMarker && second == commentMarker
}

// skipComment consumes a comment through the end of its line.
func skipComment(c *Cursor, _ Position) (Token, error) {
	c.AcceptWhile(func(r rune) bool { return r != '\n' })
	return Token{}, nil
}

func identStart(sigils []rune) func(c *Cursor) bool {
	return peekIs(func(r rune) bool { return isAlpha(r) || slices.Contains(sigils, r) })
}

// readIdent reads a sigil or letter followed by letters & digits.
//
// keywords must be sorted.
func readIdent(keywords []string) func(c *Cursor, pos Position) (Token, error) {
	return func(c *Cursor, pos Position) (Token, error) {
		first, _ := c.Consume()
		text := string(first) + c.AcceptWhile(isIdentPart)

		kind := KindIdentifier
		if _, found := slices.BinarySearch(keywords, text); found {
			kind = KindKeyword
		}

		return Token{Kind: kind, Text: text, Pos: pos}, nil
	}
}

// markerClass builds a class starting at marker & reading a body of runes satisfying part.
func markerClass(kind Kind, marker rune, part ValidationFunction, needsBody bool) class {
	return class{
		name: kind.String(),
		is:   peekIs(func(r rune) bool { return r == marker }),
		read: func(c *Cursor, pos Position) (Token, error) {
			c.Consume()

			body := c.AcceptWhile(part)
			if needsBody && body == "" {
				return Token{}, c.Fail(ErrUnterminatedClassRead, "empty %s marker %q", kind, marker)
			}

			return Token{Kind: kind, Text: string(marker) + body, Pos: pos}, nil
		},
	}
}

func readSingle(kind Kind) func(c *Cursor, pos Position) (Token, error) {
	return func(c *Cursor, pos Position) (Token, error) {
		r, _ := c.Consume()
		return Token{Kind: kind, Text: string(r), Pos: pos}, nil
	}
}

// readNumber reads digits with an optional fraction, `4` or `4/4`.
//
// A second splitter ends the number without being consumed.
func readNumber(c *Cursor, pos Position) (tok Token, err error) {
	tok = Token{Kind: KindNumber, Pos: pos}

	numerator := c.AcceptWhile(isNumeric)
	if tok.Number.Numerator, err = parseInt(c, numerator); err != nil {
		return
	}
	tok.Text = numerator

	if r, _ := c.Peek(); r != fracSplitter {
		return
	}
	c.Consume()

	denominator := c.AcceptWhile(isNumeric)
	if denominator == "" {
		r, ok := c.Peek()
		if !ok {
			err = c.Fail(ErrMalformedNumber, "%s%c lacks a denominator", numerator, fracSplitter)
			return
		}
		err = c.Fail(ErrMalformedNumber, "%s%c followed by %q", numerator, fracSplitter, r)

		return
	}
	if tok.Number.Denominator, err = parseInt(c, denominator); err != nil {
		return
	}

	tok.Number.Fraction = true
	tok.Text = numerator + string(fracSplitter) + denominator

	return
}

func parseInt(c *Cursor, digits string) (int, error) {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, c.Fail(ErrMalformedNumber, "%s: %v", digits, err)
	}

	return n, nil
}

// lookup guards table access for runes outside the table's range.
func lookup(table *[256]bool, r rune) bool { return r >= 0 && r < 256 && table[r] }

// isWhitespace return true for whitespace, newline & carrier return.
func isWhitespace(r rune) bool { return lookup(&whitespace, r) }

func isPunctuation(r rune) bool { return lookup(&punctuation, r) }

func isOperator(r rune) bool { return lookup(&operators, r) }

// isAlpha return true for a letter.
func isAlpha(r rune) bool { return unicode.IsLetter(r) }

// isNumeric return true for an ASCII digit.
func isNumeric(r rune) bool { return r >= '0' && r <= '9' }

// isIdentPart return true for an alphanumeric rune.
func isIdentPart(r rune) bool { return isAlpha(r) || isNumeric(r) }

func isMarkerPart(r rune) bool { return isIdentPart(r) || lookup(&markerSymbols, r) }

func isChordPart(r rune) bool { return isIdentPart(r) || r == '#' }

func isBeatPart(r rune) bool { return isNumeric(r) || r == '.' }
