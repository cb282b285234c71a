package pipeline

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// writeResult is the outcome of one save task.
type writeResult struct {
	job Job
	err error
}

// writerPool saves decoded index paths to storage, optionally fanning
// out across concurrent goroutines bounded by queueDepth outstanding
// tasks. With workers == 0, submit saves synchronously on the caller's
// goroutine and queueDepth is unused.
type writerPool struct {
	codec       IndexSaver
	sem         *semaphore.Weighted
	results     chan writeResult
	wg          sync.WaitGroup
	synchronous bool
}

// newWriterPool constructs a writerPool. queueDepth bounds the number of
// saves that may be outstanding at once; submit blocks once the bound is
// reached, which is how a slow disk applies backpressure to the
// collator instead of letting queued work grow without limit.
func newWriterPool(codec IndexSaver, workers, queueDepth int) *writerPool {
	if queueDepth <= 0 {
		queueDepth = 100
	}

	return &writerPool{
		codec:       codec,
		sem:         semaphore.NewWeighted(int64(queueDepth)),
		results:     make(chan writeResult, queueDepth),
		synchronous: workers <= 0,
	}
}

// submit saves one job's indices. When the pool is synchronous it saves
// immediately and returns the result on results. Otherwise it acquires a
// queue slot (blocking if all slots are in use) and saves in a new
// goroutine, releasing the slot on completion.
func (p *writerPool) submit(ctx context.Context, job Job, indices []int32) {
	if p.synchronous {
		p.results <- writeResult{job: job, err: p.codec.SaveIndices(job.OutputPath, indices)}
		return
	}

	if err := p.sem.Acquire(ctx, 1); err != nil {
		p.results <- writeResult{job: job, err: err}
		return
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer p.sem.Release(1)
		p.results <- writeResult{job: job, err: p.codec.SaveIndices(job.OutputPath, indices)}
	}()
}

// close waits for every outstanding save to finish and closes results.
// Safe to call once, after the last submit.
func (p *writerPool) close() {
	p.wg.Wait()
	close(p.results)
}
