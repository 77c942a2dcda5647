package clock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	assert.NotNil(t, New())
}

func TestNow(t *testing.T) {
	before := time.Now()
	assert.False(t, clock{}.Now().Before(before))
}

func TestSleep(t *testing.T) {
	t.Run("elapses", func(t *testing.T) {
		assert.NoError(t, clock{}.Sleep(context.Background(), 1*time.Microsecond))
	})

	t.Run("zero duration", func(t *testing.T) {
		assert.NoError(t, clock{}.Sleep(context.Background(), 0))
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, clock{}.Sleep(ctx, time.Hour), context.Canceled)
	})
}
