// SPDX-License-Identifier: MIT
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{
		Keywords: []string{"Times", "Loop", "Times"},
		Markers:  map[Kind]rune{KindColor: '!'},
	}
	require.NoError(t, cfg.Validate())

	assert.NotNil(t, cfg.Logger)
	assert.Equal(t, []rune(DefaultSigils), cfg.Sigils)
	assert.Equal(t, []string{"Loop", "Times"}, cfg.Keywords)

	want := DefaultMarkers()
	want[KindColor] = '!'
	assert.Equal(t, want, cfg.Markers)
}

func TestNew_ConfigUntouched(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keywords = []string{"Title", "Loop"}

	_, err := New("", WithConfig(cfg), WithMarker(KindBeat, '!'))
	require.NoError(t, err)

	assert.Equal(t, []string{"Title", "Loop"}, cfg.Keywords)
	assert.Equal(t, '|', cfg.Markers[KindBeat])
}

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		check   func(t *testing.T, cfg *Config)
		wantErr bool
	}{
		{
			name: "empty",
			data: "",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultMarkers(), cfg.Markers)
				assert.Equal(t, []string{"Forever", "Loop", "Times", "Title"}, cfg.Keywords)
				assert.False(t, cfg.Debug)
			},
		},
		{
			name: "overrides",
			data: "debug: true\n" +
				"sigils: \":?\"\n" +
				"keywords: [Repeat, Loop]\n" +
				"markers:\n" +
				"  color: \"!\"\n" +
				"  chord: \"&\"\n",
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, []rune{':', '?'}, cfg.Sigils)
				assert.Equal(t, []string{"Loop", "Repeat"}, cfg.Keywords)
				assert.Equal(t, '!', cfg.Markers[KindColor])
				assert.Equal(t, '&', cfg.Markers[KindChord])
				assert.Equal(t, '@', cfg.Markers[KindMeta])
			},
		},
		{
			name:    "malformed yaml",
			data:    "markers: [",
			wantErr: true,
		},
		{
			name:    "unknown class",
			data:    "markers:\n  drum: \"!\"\n",
			wantErr: true,
		},
		{
			name:    "multi-character marker",
			data:    "markers:\n  color: \"!!\"\n",
			wantErr: true,
		},
		{
			name:    "overlapping markers",
			data:    "markers:\n  color: \"@\"\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(tt.data))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestParseConfig_Lexer(t *testing.T) {
	cfg, err := ParseConfig([]byte("keywords: [Repeat]\nmarkers:\n  color: \"!\"\n"))
	require.NoError(t, err)

	got, err := lex(t, "Repeat Loop !blue", WithConfig(cfg))
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, KindKeyword, got[0].Kind)
	assert.Equal(t, KindIdentifier, got[1].Kind)
	assert.Equal(t, KindColor, got[2].Kind)
}

func TestKind_String(t *testing.T) {
	for _, kind := range []Kind{KindKeyword, KindNumber, KindColor} {
		parsed, err := ParseKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	assert.Equal(t, "Kind(0)", Kind(0).String())

	_, err := ParseKind("comment")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
