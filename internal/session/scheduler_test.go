package session_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"saiyan/training-app/internal/session"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type countingTicker struct {
	rest    atomic.Int64
	elapsed atomic.Int64
}

func (c *countingTicker) TickRest()    { c.rest.Add(1) }
func (c *countingTicker) TickElapsed() { c.elapsed.Add(1) }

func TestScheduler_TicksUntilStopped(t *testing.T) {
	ticker := &countingTicker{}
	s := session.StartScheduler(context.Background(), session.Intervals{
		Rest:    2 * time.Millisecond,
		Elapsed: 5 * time.Millisecond,
	}, ticker)

	assert.Eventually(t, func() bool {
		return ticker.rest.Load() >= 3 && ticker.elapsed.Load() >= 1
	}, time.Second, time.Millisecond)

	s.Stop()
	rest, elapsed := ticker.rest.Load(), ticker.elapsed.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, rest, ticker.rest.Load())
	assert.Equal(t, elapsed, ticker.elapsed.Load())

	// second stop is harmless
	s.Stop()
}

func TestScheduler_StopsWithParentContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ticker := &countingTicker{}
	s := session.StartScheduler(ctx, session.Intervals{Rest: time.Millisecond, Elapsed: time.Millisecond}, ticker)

	cancel()
	s.Stop()
}

func TestScheduler_CancelThenStop(t *testing.T) {
	s := session.StartScheduler(context.Background(), session.DefaultIntervals, &countingTicker{})
	s.Cancel()
	s.Stop()
}
