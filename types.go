package viterbi

import (
	"github.com/nyxgraph/viterbi/backend"
	"github.com/nyxgraph/viterbi/chunk"
	"github.com/nyxgraph/viterbi/engine"
	"github.com/nyxgraph/viterbi/pipeline"
)

// Options configures every entry point in this package. Construct with
// DefaultOptions and override via With... functions, mirroring package
// engine's Config/Option pattern.
type Options struct {
	LogProbs    bool
	Device      backend.Device
	UseChunking bool
	Chunk       chunk.Options
	BatchSize   int
	LoadWorkers int
	SaveWorkers int
	QueueDepth  int
	Progress    func(completed, total int)
}

// Option configures an Options value.
type Option func(*Options)

// WithLogProbs sets whether emission/transition/initial inputs are
// already in natural-log space.
func WithLogProbs(logProbs bool) Option { return func(o *Options) { o.LogProbs = logProbs } }

// WithDevice selects the backend device for the forward recurrence.
func WithDevice(d backend.Device) Option { return func(o *Options) { o.Device = d } }

// WithChunking enables state-pruned decoding using c.
func WithChunking(c chunk.Options) Option {
	return func(o *Options) {
		o.UseChunking = true
		o.Chunk = c
	}
}

// WithBatchSize sets how many sequences DecodeFiles groups per decode
// call.
func WithBatchSize(n int) Option { return func(o *Options) { o.BatchSize = n } }

// WithLoadWorkers sets how many files DecodeFiles loads concurrently.
func WithLoadWorkers(n int) Option { return func(o *Options) { o.LoadWorkers = n } }

// WithSaveWorkers selects how DecodeFiles saves: 0 saves synchronously in
// the collating goroutine; any n > 0 saves asynchronously, with the
// number of concurrent saves bounded by the queue depth, not by n.
func WithSaveWorkers(n int) Option { return func(o *Options) { o.SaveWorkers = n } }

// WithQueueDepth bounds DecodeFiles' outstanding asynchronous save
// tasks; the collator blocks once this many saves are queued.
func WithQueueDepth(n int) Option { return func(o *Options) { o.QueueDepth = n } }

// WithProgress registers a callback invoked after each DecodeFiles batch
// completes, reporting sequences completed so far and the total.
func WithProgress(fn func(completed, total int)) Option {
	return func(o *Options) { o.Progress = fn }
}

// DefaultOptions returns Options decoding on CPU from linear probability
// space, chunking disabled, batching 32 sequences at a time with 4
// loader workers and synchronous saves.
func DefaultOptions(opts ...Option) Options {
	o := Options{
		LogProbs:    false,
		Device:      backend.DeviceCPU,
		UseChunking: false,
		Chunk:       chunk.DefaultOptions(),
		BatchSize:   32,
		LoadWorkers: 4,
		SaveWorkers: 0,
		QueueDepth:  100,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o Options) engineConfig() engine.Config {
	return engine.Config{
		Device:      o.Device,
		LogProbs:    o.LogProbs,
		UseChunking: o.UseChunking,
		Chunk:       o.Chunk,
	}
}

func (o Options) pipelineConfig() pipeline.Config {
	return pipeline.Config{
		BatchSize:   o.BatchSize,
		LoadWorkers: o.LoadWorkers,
		SaveWorkers: o.SaveWorkers,
		QueueDepth:  o.QueueDepth,
		Progress:    o.Progress,
	}
}
