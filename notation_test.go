// SPDX-License-Identifier: MIT
package notation

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/fisherprime/notation/lexer"
)

const song = `Title :anthem
@tempo = 120
%intro Loop 2 Times [ ^Am ^F ^C ^G ] // four chords
%outro Loop Forever [ |1 |2 |3 |4 ] ~aeolian $blue 6/8
`

func TestTokenize(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		opts      []lexer.Option
		wantTexts []string
		wantErr   error
	}{
		{
			name:      "song",
			source:    song,
			wantTexts: strings.Fields("Title :anthem @tempo = 120 %intro Loop 2 Times [ ^Am ^F ^C ^G ] %outro Loop Forever [ |1 |2 |3 |4 ] ~aeolian $blue 6/8"),
		},
		{
			name:      "whitespace",
			source:    "\n\t \n",
			wantTexts: []string{},
		},
		{
			name:      "truncated on error",
			source:    "Loop 4//4",
			wantTexts: []string{"Loop"},
			wantErr:   lexer.ErrMalformedNumber,
		},
		{
			name:    "invalid config",
			source:  "Loop",
			opts:    []lexer.Option{lexer.WithMarker(lexer.KindMeta, 'x')},
			wantErr: lexer.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(context.Background(), tt.source, tt.opts...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			if tt.wantTexts != nil {
				assert.Equal(t, tt.wantTexts, got.Texts())
			}
		})
	}
}

func TestTokenize_Kinds(t *testing.T) {
	got, err := Tokenize(context.Background(), "Title :a = 3/4 @m %s | ^C ~s $c ( )")
	require.NoError(t, err)

	want := []lexer.Kind{
		lexer.KindKeyword, lexer.KindIdentifier, lexer.KindOperator, lexer.KindNumber,
		lexer.KindMeta, lexer.KindSection, lexer.KindBeat, lexer.KindChord, lexer.KindScale,
		lexer.KindColor, lexer.KindPunctuation, lexer.KindPunctuation,
	}
	assert.Equal(t, want, got.Kinds())
	assert.Equal(t, lexer.Number{Numerator: 3, Denominator: 4, Fraction: true}, got[3].Number)
}

func TestTokenize_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := Tokenize(ctx, song)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, got)
}

func TestTokenizeBatch(t *testing.T) {
	sources := []Source{
		{Name: "song", Text: song},
		{Name: "bad", Text: ":a #"},
		{Name: "short", Text: "Loop 3 Times"},
		{Name: "empty", Text: ""},
	}

	results, err := TokenizeBatch(context.Background(), sources,
		WithPoolSize(2),
		WithBatchDebug(true),
		WithBatchLogger(logrus.New()),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBatch)
	assert.ErrorIs(t, err, lexer.ErrUnexpectedCharacter)
	assert.Contains(t, err.Error(), "bad: ")

	require.Len(t, results, len(sources))
	for index, resl := range results {
		assert.Equal(t, sources[index].Name, resl.Name)
	}

	assert.NoError(t, results[0].Err)
	assert.Len(t, results[0].Tokens, 27)

	assert.ErrorIs(t, results[1].Err, lexer.ErrUnexpectedCharacter)
	assert.Equal(t, []string{":a"}, results[1].Tokens.Texts())

	assert.NoError(t, results[2].Err)
	assert.Equal(t, []string{"Loop", "3", "Times"}, results[2].Tokens.Texts())

	assert.NoError(t, results[3].Err)
	assert.Empty(t, results[3].Tokens)
}

func TestTokenizeBatch_LexerOptions(t *testing.T) {
	sources := make([]Source, 20)
	for index := range sources {
		sources[index] = Source{Name: fmt.Sprint(index), Text: fmt.Sprintf("Repeat %d !red", index)}
	}

	results, err := TokenizeBatch(context.Background(), sources,
		WithLexerOptions(lexer.WithKeywords("Repeat"), lexer.WithMarker(lexer.KindColor, '!')),
	)
	require.NoError(t, err)

	for index, resl := range results {
		require.Len(t, resl.Tokens, 3)
		assert.Equal(t, lexer.KindKeyword, resl.Tokens[0].Kind)
		assert.Equal(t, index, resl.Tokens[1].Number.Numerator)
		assert.Equal(t, lexer.KindColor, resl.Tokens[2].Kind)
	}
}

func TestTokenizeBatch_Empty(t *testing.T) {
	results, err := TokenizeBatch(context.Background(), nil)
	assert.NoError(t, err)
	assert.Empty(t, results)
}

func BenchmarkTokenize(b *testing.B) {
	src := strings.Repeat(song, 16)
	ctx := context.Background()

	b.ReportAllocs()
	b.SetBytes(int64(len(src)))
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if _, err := Tokenize(ctx, src); err != nil {
			b.Fatal(err)
		}
	}
}
