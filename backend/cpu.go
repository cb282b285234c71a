package backend

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/nyxgraph/viterbi/kernel"
)

// cpuBackend runs the forward recurrence in-process, fanning out across
// batch elements with golang.org/x/sync/errgroup.
type cpuBackend struct {
	// maxParallel bounds the number of sequences decoded concurrently. 0
	// means GOMAXPROCS.
	maxParallel int
}

// NewCPU returns a Backend that decodes batches in-process on the CPU.
// maxParallel bounds the number of sequences decoded concurrently; 0
// selects runtime.GOMAXPROCS(0).
func NewCPU(maxParallel int) Backend {
	return &cpuBackend{maxParallel: maxParallel}
}

func (c *cpuBackend) AllocateWorkspace(extents []kernel.Extent) *Workspace {
	ws := &Workspace{
		Posterior: make([][]float32, len(extents)),
		Memo:      make([][]int32, len(extents)),
	}
	for i, ext := range extents {
		ws.Posterior[i] = make([]float32, ext.States)
		ws.Memo[i] = make([]int32, ext.Frames*ext.States)
	}

	return ws
}

func (c *cpuBackend) Forward(ctx context.Context, batch Batch, ws *Workspace) error {
	limit := c.maxParallel
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for b := range batch.Extents {
		b := b
		g.Go(func() error {
			// Cooperative cancellation is checked once per sequence, not
			// inside the recurrence itself.
			if err := gctx.Err(); err != nil {
				return err
			}

			ext := batch.Extents[b]
			res := kernel.ForwardResult{Posterior: ws.Posterior[b], Memo: ws.Memo[b]}

			if batch.Candidates != nil && batch.Candidates[b] != nil {
				pruned, err := kernel.ForwardPruned(
					batch.LogEmission[b], ext, batch.LogTransition, batch.LogInitial, batch.Candidates[b])
				if err != nil {
					return err
				}
				copy(res.Posterior, pruned.Posterior)
				copy(res.Memo, pruned.Memo)
				return nil
			}

			prev := make([]float32, ext.States)
			curr := make([]float32, ext.States)
			if err := kernel.Validate(ext, len(batch.LogTransition), len(batch.LogInitial)); err != nil {
				return err
			}
			kernel.ForwardWithBuffers(batch.LogEmission[b], ext, batch.LogTransition, batch.LogInitial, res, prev, curr)

			return nil
		})
	}

	return g.Wait()
}
