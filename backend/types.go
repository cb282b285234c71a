package backend

import (
	"context"

	"github.com/nyxgraph/viterbi/kernel"
)

// Device selects where a batch is decoded. DeviceCPU is always
// available; any other value names an accelerator index registered via
// Register.
type Device int

// DeviceCPU is the always-available in-process backend.
const DeviceCPU Device = -1

// Batch describes one batch of sequences to decode, already converted to
// natural-log space and already padded to a common frame count by the
// caller (package engine). LogEmission holds one flat (Frames[b],
// States) buffer per sequence; Extents[b].Frames is the sequence's true
// length L[b] (not the padded length) so that per-sequence work and
// padding never leak into the kernels's masking invariant.
type Batch struct {
	LogEmission   [][]float32
	Extents       []kernel.Extent
	LogTransition []float32
	LogInitial    []float32
	// Candidates, when non-nil, holds a per-sequence, per-frame candidate
	// list (see package chunk) and directs the backend to use the pruned
	// forward recurrence (kernel.ForwardPruned) instead of the dense one.
	Candidates [][][]int32
}

// Workspace holds the pre-allocated, per-sequence output buffers a
// Backend fills in place: Posterior[b] (terminal δ, length States) and
// Memo[b] (length Extents[b].Frames*States). Reusing a Workspace across
// batches (via engine's pool) amortizes the allocation of these output
// buffers; the CPU backend still allocates two length-States scratch rows
// per sequence.
type Workspace struct {
	Posterior [][]float32
	Memo      [][]int32
}

// Backend is the capability object the batch engine dispatches through.
// Implementations must be safe for concurrent use by multiple goroutines
// decoding distinct batches.
type Backend interface {
	// AllocateWorkspace returns a Workspace sized for extents, one entry
	// per sequence in the batch about to be decoded.
	AllocateWorkspace(extents []kernel.Extent) *Workspace

	// Forward fills ws.Posterior and ws.Memo for every sequence in batch.
	// It does not block indefinitely: ctx is checked only between
	// sequences, never inside a single sequence's recurrence.
	Forward(ctx context.Context, batch Batch, ws *Workspace) error
}
