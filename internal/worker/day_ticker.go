package worker

import (
	"context"
	"time"

	"github.com/osse101/incomeengine/internal/engine"
	"github.com/osse101/incomeengine/internal/logger"
)

// DayCloser closes the current engine day
type DayCloser interface {
	EndDay(ctx context.Context) engine.DayReport
}

// DayHook receives every report the ticker produces
type DayHook func(ctx context.Context, report engine.DayReport) error

// DayTicker advances the engine one day per interval of wall-clock time
type DayTicker struct {
	BaseWorker
	closer   DayCloser
	interval time.Duration
	hooks    []DayHook
}

// NewDayTicker creates a ticker. A non-positive interval disables it.
func NewDayTicker(closer DayCloser, interval time.Duration, hooks ...DayHook) *DayTicker {
	w := &DayTicker{
		closer:   closer,
		interval: interval,
		hooks:    hooks,
	}
	w.init()
	return w
}

// Start schedules the first day close
func (w *DayTicker) Start() {
	if w.interval <= 0 {
		logger.FromContext(context.Background()).Info(LogMsgDayTickerDisabled)
		return
	}
	w.scheduleNext()
}

func (w *DayTicker) scheduleNext() {
	w.arm(w.interval, func() {
		if _, ok := w.closeDay(context.Background()); ok {
			w.scheduleNext()
		}
	})
	logger.FromContext(context.Background()).Debug(LogMsgDayTickerScheduled,
		"next_close_at", time.Now().UTC().Add(w.interval))
}

// TriggerNow closes the day immediately and restarts the interval. It
// reports false after shutdown.
func (w *DayTicker) TriggerNow(ctx context.Context) (engine.DayReport, bool) {
	logger.FromContext(ctx).Info(LogMsgDayManualTrigger)
	report, ok := w.closeDay(ctx)
	if ok && w.interval > 0 {
		w.scheduleNext()
	}
	return report, ok
}

func (w *DayTicker) closeDay(ctx context.Context) (engine.DayReport, bool) {
	var report engine.DayReport
	ok := w.track(func() {
		log := logger.FromContext(ctx)
		log.Debug(LogMsgDayClosing)

		report = w.closer.EndDay(ctx)
		log.Info(LogMsgDayClosed, "day", report.Day, "earned", report.Earned, "payouts", len(report.Payouts))

		for _, hook := range w.hooks {
			if err := hook(ctx, report); err != nil {
				log.Warn(LogMsgDayHookFailed, "day", report.Day, "error", err)
			}
		}
	})
	return report, ok
}

// Shutdown cancels the pending close and waits for one in flight
func (w *DayTicker) Shutdown(ctx context.Context) error {
	return w.shutdownInternal(ctx, WorkerNameDayTicker)
}
