package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/incomeengine/internal/engine"
)

type countingCloser struct {
	mu   sync.Mutex
	days int
}

func (c *countingCloser) EndDay(context.Context) engine.DayReport {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.days++
	return engine.DayReport{Day: c.days, Earned: 10}
}

func (c *countingCloser) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.days
}

func TestDayTicker_ClosesDaysOnInterval(t *testing.T) {
	closer := &countingCloser{}
	var mu sync.Mutex
	var seen []int
	hook := func(_ context.Context, report engine.DayReport) error {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, report.Day)
		return nil
	}

	w := NewDayTicker(closer, 5*time.Millisecond, hook)
	w.Start()

	assert.Eventually(t, func() bool { return closer.count() >= 3 }, time.Second, time.Millisecond)
	require.NoError(t, w.Shutdown(context.Background()))

	stopped := closer.count()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, closer.count(), "no days close after shutdown")

	mu.Lock()
	defer mu.Unlock()
	require.GreaterOrEqual(t, len(seen), 3)
	assert.Equal(t, []int{1, 2, 3}, seen[:3])
}

func TestDayTicker_DisabledInterval(t *testing.T) {
	closer := &countingCloser{}
	w := NewDayTicker(closer, 0)
	w.Start()

	time.Sleep(10 * time.Millisecond)
	assert.Zero(t, closer.count())

	report, ok := w.TriggerNow(context.Background())
	require.True(t, ok)
	assert.Equal(t, 1, report.Day)
	assert.Equal(t, 1, closer.count())
	require.NoError(t, w.Shutdown(context.Background()))

	_, ok = w.TriggerNow(context.Background())
	assert.False(t, ok)
	assert.Equal(t, 1, closer.count())
}

func TestDayTicker_HookErrorsDoNotStopTheTicker(t *testing.T) {
	closer := &countingCloser{}
	calls := 0
	failing := func(context.Context, engine.DayReport) error {
		calls++
		return errors.New("sink unavailable")
	}

	w := NewDayTicker(closer, 0, failing)
	w.TriggerNow(context.Background())
	w.TriggerNow(context.Background())

	assert.Equal(t, 2, closer.count())
	assert.Equal(t, 2, calls)
}

func TestDayTicker_ShutdownIsIdempotent(t *testing.T) {
	w := NewDayTicker(&countingCloser{}, time.Hour)
	w.Start()

	require.NoError(t, w.Shutdown(context.Background()))
	require.NoError(t, w.Shutdown(context.Background()))
}
