package worker

import (
	"context"
	"sync"
)

// Job represents a unit of work to be executed
type Job interface {
	Execute(ctx context.Context) Result
}

// Result represents the result of a job execution
type Result interface {
	GetError() error
}

type queued struct {
	index int
	job   Job
}

type completed struct {
	index  int
	result Result
}

// Pool manages a pool of workers that execute jobs concurrently.
// Wait returns results in submission order regardless of completion order.
type Pool struct {
	workers    int
	jobQueue   chan queued
	results    chan completed
	submitted  int
	collected  map[int]Result
	drained    chan struct{}
	wg         sync.WaitGroup
	ctx        context.Context
	cancelFunc context.CancelFunc
	closeOnce  sync.Once
}

// NewPool creates a new worker pool with the specified number of workers.
// Cancelling ctx stops the workers.
func NewPool(ctx context.Context, workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(ctx)

	return &Pool{
		workers:    workers,
		jobQueue:   make(chan queued, workers*2),
		results:    make(chan completed, workers*2),
		collected:  make(map[int]Result),
		drained:    make(chan struct{}),
		ctx:        ctx,
		cancelFunc: cancel,
	}
}

// Start starts the worker pool
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	go p.collect()
}

// collect drains results as they arrive so workers never block on a
// full results channel while the producer is still submitting.
func (p *Pool) collect() {
	defer close(p.drained)
	for c := range p.results {
		p.collected[c.index] = c.result
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case q, ok := <-p.jobQueue:
			if !ok {
				return
			}
			// The collector drains results until every worker has exited,
			// so finished work is always recorded.
			p.results <- completed{index: q.index, result: q.job.Execute(p.ctx)}
		}
	}
}

// Submit submits a job to the pool for execution. Submit is not safe for
// concurrent use; a single producer feeds the pool.
func (p *Pool) Submit(job Job) {
	select {
	case <-p.ctx.Done():
		return
	case p.jobQueue <- queued{index: p.submitted, job: job}:
		p.submitted++
	}
}

// Wait waits for all jobs to complete and returns their results in
// submission order. Jobs that never ran because the pool was cancelled
// leave a nil slot.
func (p *Pool) Wait() []Result {
	close(p.jobQueue)
	p.wg.Wait()
	p.closeResults()
	<-p.drained

	results := make([]Result, p.submitted)
	for i, r := range p.collected {
		results[i] = r
	}

	return results
}

// Shutdown shuts down the worker pool immediately. Jobs still queued are
// dropped. It is safe to call more than once and before or after Wait.
func (p *Pool) Shutdown() {
	p.cancelFunc()
	p.wg.Wait()
	p.closeResults()
}

func (p *Pool) closeResults() {
	p.closeOnce.Do(func() {
		close(p.results)
	})
}
