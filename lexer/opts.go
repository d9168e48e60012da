// SPDX-License-Identifier: MIT
package lexer

import (
	"github.com/sirupsen/logrus"
)

// Option defines the Lexer functional option type
type Option func(*Config)

// WithConfig replaces the Lexer's Config; later options apply on top of it.
func WithConfig(cfg *Config) Option {
	return func(c *Config) {
		if cfg != nil {
			*c = *cfg.clone()
		}
	}
}

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(c *Config) { c.Debug = debug } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(c *Config) { c.Logger = logger } }

// WithKeywords configures the reserved words.
func WithKeywords(keywords ...string) Option {
	return func(c *Config) { c.Keywords = keywords }
}

// WithSigils configures the runes that start an identifier besides letters.
func WithSigils(sigils ...rune) Option { return func(c *Config) { c.Sigils = sigils } }

// WithMarker configures the leading rune of a marker class.
func WithMarker(kind Kind, marker rune) Option {
	return func(c *Config) {
		if c.Markers == nil {
			c.Markers = make(map[Kind]rune)
		}
		c.Markers[kind] = marker
	}
}
