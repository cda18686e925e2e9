package session

import (
	"context"
	"errors"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Ticker receives the periodic triggers of a running session.
type Ticker interface {
	TickRest()
	TickElapsed()
}

// Intervals between scheduler ticks.
type Intervals struct {
	Rest    time.Duration
	Elapsed time.Duration
}

// DefaultIntervals are the wall-clock rates of a real session.
var DefaultIntervals = Intervals{
	Rest:    time.Second,
	Elapsed: time.Minute,
}

// Scheduler fires rest and elapsed ticks at fixed intervals until stopped.
type Scheduler struct {
	cancel   context.CancelFunc
	group    *errgroup.Group
	stopOnce sync.Once
}

// StartScheduler begins ticking t. Stop must be called to release the goroutines.
func StartScheduler(ctx context.Context, intervals Intervals, t Ticker) *Scheduler {
	ctx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return every(gctx, intervals.Rest, t.TickRest)
	})
	g.Go(func() error {
		return every(gctx, intervals.Elapsed, t.TickElapsed)
	})

	return &Scheduler{cancel: cancel, group: g}
}

// Cancel asks both tickers to stop without waiting for them. It may be called
// from inside a tick callback.
func (s *Scheduler) Cancel() {
	s.cancel()
}

// Stop halts both tickers and waits for them. Safe to call more than once, but
// never from a tick callback or while holding a lock the callbacks need.
func (s *Scheduler) Stop() {
	s.cancel()
	s.stopOnce.Do(func() {
		if err := s.group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
			log.Errorf("session scheduler stopped: %s", err)
		}
	})
}

func every(ctx context.Context, interval time.Duration, fn func()) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			fn()
		}
	}
}
