package worker

import (
	"context"
	"sync"
	"time"

	"github.com/ledren/scoutbook/internal/logger"
)

// Job is a unit of background work: a profile rebuild, a model cache warm.
type Job interface {
	Run(context.Context) error
	Name() string
}

// Pool fans queued jobs out to a fixed number of goroutines. Jobs are best
// effort: a failure is logged and the job dropped, never retried.
type Pool struct {
	queue   chan Job
	workers int
	cancel  context.CancelFunc
	done    sync.WaitGroup
	log     *logger.Logger
}

// NewPool sizes the pool; non-positive arguments fall back to 2 workers and
// a queue of 32.
func NewPool(workers, queueSize int) *Pool {
	if workers <= 0 {
		workers = 2
	}
	if queueSize <= 0 {
		queueSize = 32
	}
	return &Pool{
		queue:   make(chan Job, queueSize),
		workers: workers,
		log:     logger.Default().WithPrefix("worker-pool"),
	}
}

// Start launches the workers. They run until Stop or until ctx is cancelled.
func (p *Pool) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)
	p.log.Info("starting %d workers (queue capacity %d)", p.workers, cap(p.queue))
	for id := 1; id <= p.workers; id++ {
		p.done.Add(1)
		go p.run(ctx, id)
	}
}

func (p *Pool) run(ctx context.Context, id int) {
	defer p.done.Done()
	log := p.log.WithField("worker_id", id)
	log.Debug("worker up")

	for {
		select {
		case <-ctx.Done():
			log.Debug("worker exiting: %v", ctx.Err())
			return
		case job, open := <-p.queue:
			if !open {
				log.Debug("worker exiting: queue closed")
				return
			}
			p.execute(ctx, log, job)
		}
	}
}

func (p *Pool) execute(ctx context.Context, log *logger.Logger, job Job) {
	log = log.WithField("job", job.Name())
	log.Debug("running job")
	begun := time.Now()
	if err := job.Run(logger.NewContext(ctx, log)); err != nil {
		log.Error("job failed after %v: %v", time.Since(begun), err)
		return
	}
	log.Info("job done in %v", time.Since(begun))
}

// Submit enqueues a job. Blocks when the queue is full.
func (p *Pool) Submit(job Job) {
	p.log.Debug("queueing job: %s", job.Name())
	p.queue <- job
}

// Stop cancels in-flight jobs, closes the queue, and waits for the workers.
func (p *Pool) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
	close(p.queue)
	p.done.Wait()
	p.log.Info("worker pool stopped")
}

// QueueSize returns the current number of pending jobs.
func (p *Pool) QueueSize() int {
	return len(p.queue)
}
