// SPDX-License-Identifier: MIT
package notation

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/notation/lexer"
	"gitlab.com/fisherprime/notation/types"
)

type (
	// Source is a named notation source.
	Source struct {
		Name string
		Text string
	}

	// Result holds the outcome of tokenizing a Source.
	Result struct {
		Name   string
		Tokens List
		Err    error
	}

	// batch holds the TokenizeBatch options.
	batch struct {
		poolSize  int
		debug     bool
		logger    logrus.FieldLogger
		lexerOpts []lexer.Option
	}

	// BatchOption defines the TokenizeBatch functional option type.
	BatchOption func(*batch)
)

const defPoolSize = 8

// Batch errors.
var (
	ErrBatch    = errors.New("failed to tokenize batch")
	ErrPanicked = errors.New("recovery from panic")
)

// WithPoolSize configures the number of concurrently tokenized sources.
func WithPoolSize(size int) BatchOption { return func(b *batch) { b.poolSize = size } }

// WithBatchLogger configures the logger option.
func WithBatchLogger(logger logrus.FieldLogger) BatchOption {
	return func(b *batch) { b.logger = logger }
}

// WithBatchDebug configures the debug option
func WithBatchDebug(debug bool) BatchOption { return func(b *batch) { b.debug = debug } }

// WithLexerOptions configures the options passed to every source's lexer.
func WithLexerOptions(opts ...lexer.Option) BatchOption {
	return func(b *batch) { b.lexerOpts = opts }
}

// TokenizeBatch tokenizes sources concurrently, each on its own lexer.
//
// results follow the order of sources; err joins the failures of every Source.
func TokenizeBatch(ctx context.Context, sources []Source, opts ...BatchOption) (results []Result, err error) {
	b := &batch{poolSize: defPoolSize}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = logrus.New()
	}

	defer func() {
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrBatch, err)
		}
	}()

	if len(sources) < 1 {
		return
	}

	pool, err := ants.NewPool(b.poolSize, ants.WithLogger(b.logger))
	if err != nil {
		return
	}
	defer pool.Release()

	results = make([]Result, len(sources))
	errChan := make(chan error, len(sources))
	tokenCount := new(types.SafeCounter)

	wg := new(sync.WaitGroup)
	submitted := 0
	for index := range sources {
		index := index

		wg.Add(1)
		if err = pool.Submit(func() {
			defer wg.Done()

			results[index] = b.tokenize(ctx, sources[index])
			tokenCount.Add(len(results[index].Tokens))
			errChan <- results[index].Err
		}); err != nil {
			wg.Done()
			break
		}
		submitted++
	}
	wg.Wait()
	close(errChan)

	if err != nil {
		// Sources after the failed submission were never tokenized.
		results = results[:submitted]
		return
	}

	err = types.MonitorChannels(ctx, submitted, errChan, "source")

	if b.debug {
		b.logger.Debugf("tokenized %d sources into %d tokens", len(results), tokenCount.Value())
	}

	return
}

// tokenize runs a single Source.
func (b *batch) tokenize(ctx context.Context, src Source) (resl Result) {
	resl.Name = src.Name

	defer func() {
		if r := recover(); r != nil {
			resl.Err = fmt.Errorf("%w: %v", ErrPanicked, r)
		}

		if resl.Err != nil {
			resl.Err = fmt.Errorf("%s: %w", src.Name, resl.Err)

			if b.debug {
				b.logger.Debugf("source %s failed after %d tokens: %v", src.Name, len(resl.Tokens), resl.Err)
			}
		}
	}()

	resl.Tokens, resl.Err = Tokenize(ctx, src.Text, b.lexerOpts...)

	return
}
