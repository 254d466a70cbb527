package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_BoundsConcurrency(t *testing.T) {
	p := NewPool(1)
	ctx := context.Background()

	require.NoError(t, p.Acquire(ctx))

	// A second acquire must block until the slot is released.
	timeoutCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	err := p.Acquire(timeoutCtx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	p.Release()
	require.NoError(t, p.Acquire(ctx))
	p.Release()
}

func TestPool_CancelledContext(t *testing.T) {
	p := NewPool(1)
	require.NoError(t, p.Acquire(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := p.Acquire(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	p.Release()
}

func TestNewPool_MinimumSize(t *testing.T) {
	p := NewPool(0)
	require.NoError(t, p.Acquire(context.Background()))
	p.Release()
}
