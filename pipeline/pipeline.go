package pipeline

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Run loads, decodes, and saves every job, batching loaded sequences as
// they arrive and streaming completed batches to the writer pool while
// later batches are still loading. Per-sequence read and save failures
// are collected into the returned Result rather than aborting the run;
// a decode failure (a shape or numeric error from package engine, which
// signals malformed input rather than a transient I/O fault) is fatal
// and returned immediately alongside whatever partial Result was
// accumulated so far.
func Run(ctx context.Context, codec Codec, jobs []Job, in Input, cfg Config) (Result, error) {
	if len(jobs) == 0 {
		return Result{}, ErrNoJobs
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 32
	}

	log := logrus.WithField("component", "pipeline")
	result := Result{OutputFiles: make(map[string]string, len(jobs))}

	writer := newWriterPool(codec, cfg.SaveWorkers, cfg.QueueDepth)
	drainDone := make(chan struct{})
	go func() {
		defer close(drainDone)
		for wr := range writer.results {
			if wr.err != nil {
				log.WithError(wr.err).WithField("path", wr.job.OutputPath).Warn("save failed")
				result.WriteFailures = append(result.WriteFailures, WriteError{Path: wr.job.OutputPath, Err: wr.err})
				continue
			}
			result.OutputFiles[wr.job.InputPath] = wr.job.OutputPath
		}
	}()

	total := len(jobs)
	completed := 0
	pending := make([]loaded, 0, cfg.BatchSize)

	flush := func() error {
		if len(pending) == 0 {
			return nil
		}
		// Cooperative cancellation is checked once per batch, between
		// batches: an in-flight batch always runs to completion.
		if err := ctx.Err(); err != nil {
			return err
		}
		bd, err := buildDescriptor(pending, in.Transition, in.Initial)
		if err != nil {
			return err
		}
		paths, err := in.Engine.Decode(ctx, bd, in.Config)
		if err != nil {
			return err
		}
		for i, item := range pending {
			writer.submit(ctx, item.job, paths[i])
		}

		completed += len(pending)
		if cfg.Progress != nil {
			cfg.Progress(completed, total)
		}
		log.WithFields(logrus.Fields{
			"batch_size": len(pending),
			"completed":  completed,
			"total":      total,
		}).Info("batch decoded")
		pending = pending[:0]

		return nil
	}

	abort := func(err error) (Result, error) {
		writer.close()
		<-drainDone
		return result, err
	}

	for r := range loadAll(ctx, codec, jobs, cfg.LoadWorkers) {
		if r.err != nil {
			log.WithError(r.err).WithField("path", r.job.InputPath).Warn("load failed")
			result.ReadFailures = append(result.ReadFailures, ReadError{Path: r.job.InputPath, Err: r.err})
			continue
		}

		pending = append(pending, r.seq)
		if len(pending) >= cfg.BatchSize {
			if err := flush(); err != nil {
				return abort(err)
			}
		}
	}
	if err := flush(); err != nil {
		return abort(err)
	}

	writer.close()
	<-drainDone

	return result, nil
}
