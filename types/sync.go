// SPDX-License-Identifier: MIT
package types

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

type (
	// SafeCounter is a thread-safe counter.
	SafeCounter struct {
		m   sync.Mutex
		val int
	}
)

// Synchronization errors.
var (
	ErrInvalidGoroutineCount = errors.New("invalid goroutine count")
)

// Inc increments the counter.
func (c *SafeCounter) Inc() { c.Add(1) }

// Add n to the counter.
func (c *SafeCounter) Add(n int) {
	c.m.Lock()
	defer c.m.Unlock()
	c.val += n
}

// Value returns the current value of the counter.
func (c *SafeCounter) Value() int {
	c.m.Lock()
	defer c.m.Unlock()
	return c.val
}

// MonitorChannels waits for operations results over errChan, a nil entry marking a success.
//
// The errors are joined in arrival order; errPrefix should be in the singular form.
func MonitorChannels(ctx context.Context, operations int, errChan <-chan error, errPrefix string) (err error) {
	if operations < 1 {
		err = fmt.Errorf("%s %w: %d", errPrefix, ErrInvalidGoroutineCount, operations)
		return
	}

	for index := 0; index < operations; index++ {
		select {
		case <-ctx.Done():
			if err != nil {
				return fmt.Errorf("%v, %w", err, ctx.Err())
			}
			return ctx.Err()
		case e, proceed := <-errChan:
			if !proceed {
				return
			}
			if e == nil {
				continue
			}

			if err != nil {
				err = fmt.Errorf("%v, %w", err, e)
			} else {
				err = fmt.Errorf("%s %w", errPrefix, e)
			}
		}
	}

	return
}
