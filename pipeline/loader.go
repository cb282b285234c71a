package pipeline

import (
	"context"
	"sync"
)

// loaded is one successfully loaded sequence, still tagged with its job
// so the collator can route the eventual output back to disk.
type loaded struct {
	job    Job
	data   []float32
	frames int
	states int
}

// loadAll fans jobs out across workers concurrent EmissionLoader calls.
// Results — successes and failures alike — arrive on the returned
// channel in completion order, not job order; the channel is closed once
// every job has been attempted. A failing load never stops its peers.
func loadAll(ctx context.Context, codec EmissionLoader, jobs []Job, workers int) <-chan loadResult {
	if workers <= 0 {
		workers = 4
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	in := make(chan Job)
	out := make(chan loadResult, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for job := range in {
				if ctx.Err() != nil {
					out <- loadResult{job: job, err: ctx.Err()}
					continue
				}
				data, frames, states, err := codec.LoadEmission(job.InputPath)
				if err != nil {
					out <- loadResult{job: job, err: err}
					continue
				}
				out <- loadResult{job: job, seq: loaded{job: job, data: data, frames: frames, states: states}}
			}
		}()
	}

	go func() {
		defer close(in)
		for _, job := range jobs {
			in <- job
		}
	}()
	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// loadResult is one outcome of loadAll: either seq is populated, or err
// explains why job's emission could not be loaded.
type loadResult struct {
	job Job
	seq loaded
	err error
}
