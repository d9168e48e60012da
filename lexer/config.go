// SPDX-License-Identifier: MIT
package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

type (
	// Config defines configuration options for the Lexer's operations.
	Config struct {
		Logger logrus.FieldLogger
		Debug  bool

		// Sigils are the non-letter runes that may start an identifier.
		Sigils []rune
		// Keywords are matched case-sensitively against complete identifiers.
		Keywords []string
		// Markers maps each marker Kind to the rune that starts it.
		Markers map[Kind]rune
	}

	// configFile is the YAML representation of a Config.
	configFile struct {
		Debug    *bool             `yaml:"debug"`
		Sigils   *string           `yaml:"sigils"`
		Keywords []string          `yaml:"keywords"`
		Markers  map[string]string `yaml:"markers"`
	}
)

const (
	// DefaultSigils lists the runes that start an identifier besides letters.
	DefaultSigils = ":"

	commentMarker = '/'
	fracSplitter  = '/'
)

// DefaultKeywords are the reserved words of the notation.
var DefaultKeywords = []string{"Loop", "Times", "Forever", "Title"}

// markerKinds lists the marker classes in classification order.
var markerKinds = []Kind{KindMeta, KindSection, KindBeat, KindChord, KindScale, KindColor}

// DefaultMarkers obtains the default leading rune per marker Kind.
func DefaultMarkers() map[Kind]rune {
	return map[Kind]rune{
		KindMeta:    '@',
		KindSection: '%',
		KindBeat:    '|',
		KindChord:   '^',
		KindScale:   '~',
		KindColor:   '$',
	}
}

// DefaultConfig obtains the package's default Config.
func DefaultConfig() *Config {
	return &Config{
		Logger:   logrus.New(),
		Sigils:   []rune(DefaultSigils),
		Keywords: slices.Clone(DefaultKeywords),
		Markers:  DefaultMarkers(),
	}
}

// clone copies the Config so that validating it leaves c untouched.
func (c *Config) clone() *Config {
	dup := *c
	dup.Sigils = slices.Clone(c.Sigils)
	dup.Keywords = slices.Clone(c.Keywords)
	dup.Markers = maps.Clone(c.Markers)

	return &dup
}

// ParseConfig reads a Config from YAML, falling back to the defaults for omitted entries.
//
//	debug: false
//	sigils: ":"
//	keywords: [Loop, Times, Forever, Title]
//	markers:
//	  meta: "@"
//	  chord: "^"
func ParseConfig(data []byte) (cfg *Config, err error) {
	var file configFile
	if err = yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	cfg = DefaultConfig()
	if file.Debug != nil {
		cfg.Debug = *file.Debug
	}
	if file.Sigils != nil {
		cfg.Sigils = []rune(*file.Sigils)
	}
	if file.Keywords != nil {
		cfg.Keywords = file.Keywords
	}

	for name, value := range file.Markers {
		var kind Kind
		if kind, err = ParseKind(name); err != nil {
			return nil, err
		}
		if utf8.RuneCountInString(value) != 1 {
			return nil, fmt.Errorf("%w: %s marker %q is not a single character", ErrInvalidConfig, name, value)
		}

		r, _ := utf8.DecodeRuneInString(value)
		cfg.Markers[kind] = r
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return
}

// Validate populates missing Config entries with defaults & checks that the leading runes of the
// lexical classes don't overlap.
func (c *Config) Validate() error {
	if c.Logger == nil {
		c.Logger = logrus.New()
	}
	if len(c.Sigils) < 1 {
		c.Sigils = []rune(DefaultSigils)
	}
	if c.Keywords == nil {
		c.Keywords = slices.Clone(DefaultKeywords)
	}
	if c.Markers == nil {
		c.Markers = make(map[Kind]rune, len(markerKinds))
	}

	defaults := DefaultMarkers()
	for kind := range c.Markers {
		if !slices.Contains(markerKinds, kind) {
			return fmt.Errorf("%w: %s is not a marker class", ErrInvalidConfig, kind)
		}
	}
	for _, kind := range markerKinds {
		if _, ok := c.Markers[kind]; !ok {
			c.Markers[kind] = defaults[kind]
		}
	}

	// owners records the class claiming each configurable leading rune.
	owners := make(map[rune]string, len(c.Sigils)+len(markerKinds))
	claim := func(r rune, owner string) error {
		if reason := reservedRune(r); reason != "" {
			return fmt.Errorf("%w: %s %q is %s", ErrInvalidConfig, owner, r, reason)
		}
		if prev, ok := owners[r]; ok && prev != owner {
			return fmt.Errorf("%w: %s %q is already used by %s", ErrInvalidConfig, owner, r, prev)
		}
		owners[r] = owner

		return nil
	}

	for _, r := range c.Sigils {
		if err := claim(r, "identifier sigil"); err != nil {
			return err
		}
	}
	for _, kind := range markerKinds {
		if err := claim(c.Markers[kind], kind.String()+" marker"); err != nil {
			return err
		}
	}

	for _, kw := range c.Keywords {
		if !isKeywordShaped(kw) {
			return fmt.Errorf("%w: keyword %q can't be lexed as an identifier", ErrInvalidConfig, kw)
		}
	}
	c.Keywords = slices.Clone(c.Keywords)
	slices.Sort(c.Keywords)
	c.Keywords = slices.Compact(c.Keywords)

	return nil
}

// reservedRune describes why r can't start a configurable class, "" when it can.
func reservedRune(r rune) string {
	switch {
	case r == emptyRune:
		return "empty"
	case isWhitespace(r):
		return "whitespace"
	case isAlpha(r):
		return "a letter"
	case isNumeric(r):
		return "a digit"
	case isPunctuation(r):
		return "punctuation"
	case isOperator(r):
		return "an operator"
	case r == commentMarker:
		return "the comment marker"
	case !unicode.IsPrint(r):
		return "not printable"
	}

	return ""
}

// isKeywordShaped reports whether kw is a complete letter-led identifier.
func isKeywordShaped(kw string) bool {
	for index, r := range kw {
		if index == 0 && !isAlpha(r) {
			return false
		}
		if !isIdentPart(r) {
			return false
		}
	}

	return kw != ""
}
