package backoff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExponentialCapped(t *testing.T) {
	b := NewExponential(time.Millisecond, 3*time.Millisecond)
	want := []time.Duration{time.Millisecond, 2 * time.Millisecond, 3 * time.Millisecond, 3 * time.Millisecond}
	for i, w := range want {
		assert.Equal(t, w, b.Next(), "wait %d", i)
		require.NoError(t, b.Wait(context.Background()))
	}
	assert.Equal(t, 4, b.Waits())

	b.Reset()
	assert.Equal(t, time.Millisecond, b.Next())
}

func TestConstant(t *testing.T) {
	b := New(Constant, 5*time.Second, 0)
	assert.Equal(t, 5*time.Second, b.Next())
}

func TestExponentialLargeCountDoesNotOverflow(t *testing.T) {
	assert.Positive(t, int64(Exponential(100, time.Millisecond)))
}

func TestWaitCancelled(t *testing.T) {
	b := NewExponential(time.Hour, 0)
	c, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, b.Wait(c), context.Canceled)
	assert.Zero(t, b.Waits())
}
