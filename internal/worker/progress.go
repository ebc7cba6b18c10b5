package worker

import (
	"context"
	"sync"
)

type progressTracker struct {
	mu    sync.Mutex
	done  int
	total int
	fn    func(done, total int, r *EvaluateResult)
}

func newProgressTracker(total int, fn func(done, total int, r *EvaluateResult)) *progressTracker {
	return &progressTracker{total: total, fn: fn}
}

func (t *progressTracker) record(r *EvaluateResult) {
	if t.fn == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.done++
	t.fn(t.done, t.total, r)
}

// progressJob reports each finished evaluation to the tracker.
type progressJob struct {
	job     *EvaluateJob
	tracker *progressTracker
}

func (j *progressJob) Execute(ctx context.Context) Result {
	r := j.job.Execute(ctx).(*EvaluateResult)
	j.tracker.record(r)
	return r
}
