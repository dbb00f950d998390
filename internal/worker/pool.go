package worker

import (
	"context"
	"sync"

	"github.com/osse101/incomeengine/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to Job
type JobFunc func(ctx context.Context) error

// Process implements Job
func (f JobFunc) Process(ctx context.Context) error { return f(ctx) }

// Pool runs queued jobs on a fixed number of goroutines
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	stopOnce sync.Once
}

// NewPool creates a new worker pool. Jobs receive ctx.
func NewPool(ctx context.Context, workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		ctx:      ctx,
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.jobQueue {
		if err := job.Process(p.ctx); err != nil {
			logger.FromContext(p.ctx).Error(LogMsgWorkerJobFailed, "error", err)
		}
	}
}

// Enqueue adds a job, blocking while the queue is full. It must not be
// called after Stop.
func (p *Pool) Enqueue(job Job) {
	p.jobQueue <- job
}

// Stop closes the queue, lets the workers drain it and waits for them
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.jobQueue) })
	p.wg.Wait()
}
