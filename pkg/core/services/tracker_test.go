package services

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_OutlivesRequestContext(t *testing.T) {
	tr := NewTracker(time.Second)
	reqCtx, cancel := context.WithCancel(context.Background())

	var ran atomic.Bool
	release := make(chan struct{})
	tr.Go(reqCtx, "visit", func(ctx context.Context) {
		<-release
		ran.Store(ctx.Err() == nil)
	})
	cancel()
	close(release)

	require.NoError(t, tr.Wait(context.Background()))
	assert.True(t, ran.Load())
}

func TestTracker_TimeoutBoundsTask(t *testing.T) {
	tr := NewTracker(20 * time.Millisecond)

	var expired atomic.Bool
	tr.Go(context.Background(), "slow", func(ctx context.Context) {
		<-ctx.Done()
		expired.Store(true)
	})

	require.NoError(t, tr.Wait(context.Background()))
	assert.True(t, expired.Load())
}

func TestTracker_PanicRecovered(t *testing.T) {
	tr := NewTracker(time.Second)
	tr.Go(context.Background(), "boom", func(context.Context) { panic("boom") })
	assert.NoError(t, tr.Wait(context.Background()))
}

func TestTracker_WaitHonoursContext(t *testing.T) {
	tr := NewTracker(time.Minute)
	block := make(chan struct{})
	defer close(block)
	tr.Go(context.Background(), "stuck", func(context.Context) { <-block })

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, tr.Wait(ctx), context.DeadlineExceeded)
}
