package engine

import (
	"context"

	"github.com/nyxgraph/viterbi/backend"
	"github.com/nyxgraph/viterbi/chunk"
	"github.com/nyxgraph/viterbi/kernel"
)

// Engine decodes batches of sequences through a backend.Registry, with a
// Pool amortizing per-batch workspace allocation.
type Engine struct {
	Registry *backend.Registry
	pool     Pool
}

// New returns an Engine backed by a fresh registry containing the
// default CPU backend at backend.DeviceCPU.
func New() *Engine {
	return &Engine{Registry: backend.NewRegistry()}
}

// Decode runs the forward and backward recurrences for every sequence in
// bd and returns one index path per sequence, each exactly L[b] long,
// dispatched via backend.Backend per cfg.Device.
func (e *Engine) Decode(ctx context.Context, bd BatchDescriptor, cfg Config) ([][]int32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateBatch(bd); err != nil {
		return nil, err
	}

	extents := make([]kernel.Extent, len(bd.L))
	for b, l := range bd.L {
		extents[b] = kernel.Extent{Frames: l, States: bd.States}
	}

	logTransition, err := prepareShared(bd.Transition, bd.States*bd.States, bd.States, cfg.LogProbs)
	if err != nil {
		return nil, err
	}
	logInitial, err := prepareShared(bd.Initial, bd.States, bd.States, cfg.LogProbs)
	if err != nil {
		return nil, err
	}

	logEmission := make([][]float32, len(bd.L))
	var candidates [][][]int32
	if cfg.UseChunking {
		candidates = make([][][]int32, len(bd.L))
	}

	for b, ext := range extents {
		raw := bd.PaddedEmission[b][:ext.Frames*ext.States]
		seq := make([]float32, len(raw))
		copy(seq, raw)
		if !cfg.LogProbs {
			kernel.ToLogSpace(seq)
		}
		if err := kernel.CheckFinite(seq); err != nil {
			return nil, err
		}
		logEmission[b] = seq

		if cfg.UseChunking {
			chunkOpts := cfg.Chunk
			chunkOpts.ValuesAreLogSpace = true // logEmission is always log space by this point
			sets, err := chunk.Chunk(seq, ext, chunkOpts)
			if err != nil {
				return nil, err
			}
			flat := make([][]int32, len(sets))
			for t, s := range sets {
				flat[t] = []int32(s)
			}
			candidates[b] = flat
		}
	}

	be, err := e.Registry.Resolve(cfg.Device)
	if err != nil {
		return nil, err
	}

	ws := e.pool.get(extents)
	defer e.pool.put(ws)

	batch := backend.Batch{
		LogEmission:   logEmission,
		Extents:       extents,
		LogTransition: logTransition,
		LogInitial:    logInitial,
		Candidates:    candidates,
	}
	if err := be.Forward(ctx, batch, ws); err != nil {
		return nil, err
	}

	paths := make([][]int32, len(extents))
	for b, ext := range extents {
		res := kernel.ForwardResult{Posterior: ws.Posterior[b], Memo: ws.Memo[b]}
		paths[b] = kernel.Backward(res, ext)
	}

	return paths, nil
}

// validateBatch checks BatchDescriptor-level shape invariants that are
// cheaper to check once per batch than once per sequence.
func validateBatch(bd BatchDescriptor) error {
	if len(bd.PaddedEmission) == 0 {
		return ErrEmptyBatch
	}
	if len(bd.PaddedEmission) != len(bd.L) {
		return ErrShapeMismatch
	}
	if bd.States <= 0 {
		return ErrShapeMismatch
	}
	for b, l := range bd.L {
		if l <= 0 {
			return kernel.ErrEmptySequence
		}
		if l*bd.States > len(bd.PaddedEmission[b]) {
			return ErrShapeMismatch
		}
	}
	if bd.Transition != nil && len(bd.Transition) != bd.States*bd.States {
		return ErrShapeMismatch
	}
	if bd.Initial != nil && len(bd.Initial) != bd.States {
		return ErrShapeMismatch
	}

	return nil
}

// prepareShared copies shared (transition or initial) data into a fresh
// log-space buffer of length size, defaulting to a uniform distribution
// over states (log(1/states), valid both for a length-states initial
// vector and for every row of a states*states transition matrix) when
// values is nil, and converting from linear space when logProbs is
// false.
func prepareShared(values []float32, size, states int, logProbs bool) ([]float32, error) {
	if values == nil {
		return uniformLog(size, states), nil
	}
	if len(values) != size {
		return nil, ErrShapeMismatch
	}

	out := make([]float32, size)
	copy(out, values)
	if !logProbs {
		kernel.ToLogSpace(out)
	}
	if err := kernel.CheckFinite(out); err != nil {
		return nil, err
	}

	return out, nil
}

// uniformLog returns a buffer of size entries, each set to log(1/states).
func uniformLog(size, states int) []float32 {
	v := kernel.LogUniform(states)
	out := make([]float32, size)
	for i := range out {
		out[i] = v
	}

	return out
}
