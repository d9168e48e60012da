// SPDX-License-Identifier: MIT
package lexer

import (
	"fmt"
	"strconv"
)

type (
	// Kind int holding an identifier for the lexical class of a Token.
	Kind int

	// Number holds the value of a KindNumber Token.
	//
	// Denominator is only meaningful when Fraction is set.
	Number struct {
		Numerator   int
		Denominator int
		Fraction    bool
	}

	// Token type holding the class, text & position of a lexed span.
	Token struct {
		Kind   Kind
		Text   string   // Raw source text of this Token.
		Number Number   // Set for KindNumber.
		Pos    Position // Position of the first rune.
	}

	// Item is a Token or the error that ended the token sequence, as sent by [Lexer.Stream].
	Item struct {
		Token Token
		Err   error
	}
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_               Kind = iota // Consume 0 to start actual numbering at 1.
	KindKeyword                 // Loop, Times, Forever, Title.
	KindIdentifier              // `:name` or `name`.
	KindPunctuation             // [ ] ( ) ,
	KindOperator                // = +
	KindNumber                  // 12 or 4/4.
	KindMeta
	KindSection
	KindBeat
	KindChord
	KindScale
	KindColor
)

var kindNames = map[Kind]string{
	KindKeyword:     "keyword",
	KindIdentifier:  "identifier",
	KindPunctuation: "punctuation",
	KindOperator:    "operator",
	KindNumber:      "number",
	KindMeta:        "meta",
	KindSection:     "section",
	KindBeat:        "beat",
	KindChord:       "chord",
	KindScale:       "scale",
	KindColor:       "color",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// ParseKind obtains the Kind named by s.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown kind %q", ErrInvalidConfig, s)
}

func (n Number) String() string {
	if !n.Fraction {
		return strconv.Itoa(n.Numerator)
	}

	return strconv.Itoa(n.Numerator) + "/" + strconv.Itoa(n.Denominator)
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%s) %s", t.Kind, t.Text, t.Pos)
}
