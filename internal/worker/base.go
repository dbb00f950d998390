package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/incomeengine/internal/logger"
)

// BaseWorker holds the timer and shutdown plumbing shared by scheduled workers
type BaseWorker struct {
	mu       sync.Mutex
	timer    *time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
}

func (w *BaseWorker) init() {
	if w.shutdown == nil {
		w.shutdown = make(chan struct{})
	}
}

// arm replaces the pending timer. It is a no-op once shutdown began.
func (w *BaseWorker) arm(d time.Duration, fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopping() {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(d, fn)
}

func (w *BaseWorker) stopping() bool {
	select {
	case <-w.shutdown:
		return true
	default:
		return false
	}
}

// track runs fn as an in-flight execution that shutdown waits for. It
// reports false without running fn once shutdown began.
func (w *BaseWorker) track(fn func()) bool {
	w.mu.Lock()
	if w.stopping() {
		w.mu.Unlock()
		return false
	}
	w.wg.Add(1)
	w.mu.Unlock()

	defer w.wg.Done()
	fn()
	return true
}

func (w *BaseWorker) shutdownInternal(ctx context.Context, workerName string) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down " + workerName)

	w.mu.Lock()
	if !w.stopping() {
		close(w.shutdown)
	}
	if w.timer != nil {
		w.timer.Stop()
		log.Info("Cancelled pending " + workerName + " execution")
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(workerName + " shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn(workerName + " shutdown timeout")
		return ctx.Err()
	}
}
