// Package retry provides a bounded retry primitive for polling asynchronous server state.
package retry

import (
	"context"
	"errors"
	"time"

	"github.com/uber/lsmux/src/lsmux/internal/clock"
)

// ErrExhausted is returned by Do when every attempt completed without the operation reporting done.
var ErrExhausted = errors.New("retry attempts exhausted")

// Policy bounds how many times an operation is attempted and how long to wait in between.
type Policy struct {
	// Attempts is the total number of attempts, including the first one.
	Attempts int `yaml:"attempts"`
	// Delay is the wait before the second attempt.
	Delay time.Duration `yaml:"delay"`
	// Multiplier scales Delay after each wait. Values below 1 keep the delay fixed.
	Multiplier float64 `yaml:"multiplier"`
}

// Func is a single attempt. It reports done once no further attempts are needed.
// A non-nil error stops retrying immediately and is returned by Do unchanged.
type Func func(ctx context.Context, attempt int) (done bool, err error)

// Do calls fn until it reports done, returns an error, or the policy's attempts are used up.
// The number of attempts made is always returned.
func Do(ctx context.Context, clk clock.Clock, p Policy, fn Func) (int, error) {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}

	delay := p.Delay
	for attempt := 1; ; attempt++ {
		done, err := fn(ctx, attempt)
		if err != nil {
			return attempt, err
		}
		if done {
			return attempt, nil
		}
		if attempt >= attempts {
			return attempt, ErrExhausted
		}

		if err := clk.Sleep(ctx, delay); err != nil {
			return attempt, err
		}
		if p.Multiplier > 1 {
			delay = time.Duration(float64(delay) * p.Multiplier)
		}
	}
}
