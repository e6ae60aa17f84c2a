package services

import (
	"context"
	"sync"
	"time"

	"github.com/wadjakorntonsri/stacc/pkg/logging"
	"github.com/wadjakorntonsri/stacc/pkg/metrics"
)

// Tracker runs side tasks (visit recording, view counting) on their own goroutines so
// the response never waits for them.
type Tracker struct {
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewTracker(timeout time.Duration) *Tracker {
	return &Tracker{timeout: timeout}
}

func (t *Tracker) Go(ctx context.Context, name string, task func(ctx context.Context)) {
	taskCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), t.timeout)

	t.wg.Add(1)
	metrics.TrackerInFlight.Inc()
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				logging.Ctx(taskCtx).Error().Str("task", name).Interface("panic", rec).Msg("side task panicked")
			}
			cancel()
			metrics.TrackerInFlight.Dec()
			t.wg.Done()
		}()
		task(taskCtx)
	}()
}

// Wait blocks until every started task has returned or ctx is done.
func (t *Tracker) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		t.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
