// Package engine wraps package kernel (and optionally package chunk)
// with batch dispatch, padding/length masking, log-space conversion, and
// backend selection.
//
// 🚀 What it does:
//
//	Decode accepts a BatchDescriptor — one padded emission buffer per
//	sequence, a true-length vector, and optional shared transition/initial
//	distributions — converts to natural-log space if needed, optionally
//	prunes per-frame candidate states via package chunk, dispatches the
//	forward recurrence through a backend.Backend (CPU by default), and
//	runs kernel.Backward to produce one index path per sequence.
//
// ✨ Key properties:
//   - Never reads past a sequence's true length: padding positions are
//     never inspected, satisfying the no-read-past-length invariant by construction.
//   - A Pool amortizes the Workspace (memoization slab) allocation across
//     batches, returned between calls.
//   - Cooperative cancellation: ctx is checked once per batch (at the start
//     of Decode) and once per sequence inside the CPU backend, never inside
//     a single sequence's recurrence.
package engine
