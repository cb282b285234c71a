package engine

import (
	"github.com/nyxgraph/viterbi/backend"
	"github.com/nyxgraph/viterbi/chunk"
)

// BatchDescriptor holds one batch of sequences to decode.
//
//	PaddedEmission[b] is a flat (FMax, States) row-major buffer; only the
//	                  first L[b]*States entries are read — positions at or
//	                  beyond L[b] are never inspected.
//	L[b]              true frame count of sequence b; L[b] <= FMax.
//	States            number of categorical states S, shared by every
//	                  sequence in the batch.
//	Transition        flat (States, States) row-major buffer shared by
//	                  every sequence, or nil for uniform 1/States.
//	Initial           length-States buffer shared by every sequence, or
//	                  nil for uniform 1/States.
type BatchDescriptor struct {
	PaddedEmission [][]float32
	L              []int
	States         int
	Transition     []float32
	Initial        []float32
}

// Config configures one Decode call.
//
//	Device      - backend.DeviceCPU or a registered accelerator index.
//	LogProbs    - whether PaddedEmission/Transition/Initial are already in
//	              natural-log space; if false, Decode converts them.
//	UseChunking - whether to run package chunk before the forward pass.
//	Chunk       - chunker options, used only when UseChunking is true.
type Config struct {
	Device      backend.Device
	LogProbs    bool
	UseChunking bool
	Chunk       chunk.Options
}

// Option configures a Config. Mirrors the builder.Option /
// matrix.MatrixOptions pattern: construct with DefaultConfig(), then
// apply overrides.
type Option func(*Config)

// WithDevice selects the backend device.
func WithDevice(d backend.Device) Option { return func(c *Config) { c.Device = d } }

// WithLogProbs sets whether inputs are already in natural-log space.
func WithLogProbs(logProbs bool) Option { return func(c *Config) { c.LogProbs = logProbs } }

// WithChunking enables state-pruned decoding using opts.
func WithChunking(opts chunk.Options) Option {
	return func(c *Config) {
		c.UseChunking = true
		c.Chunk = opts
	}
}

// DefaultConfig returns a Config decoding on CPU, expecting linear
// probability-space inputs, with chunking disabled.
func DefaultConfig(opts ...Option) Config {
	cfg := Config{
		Device:      backend.DeviceCPU,
		LogProbs:    false,
		UseChunking: false,
		Chunk:       chunk.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
