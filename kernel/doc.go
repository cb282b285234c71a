// Package kernel implements the dense, log-space Viterbi forward and
// backward recurrences that sit at the bottom of the decoding stack.
//
// 🚀 What is this?
//
//	Given per-frame state emission scores, a state-to-state transition
//	matrix, and an initial-state distribution — all in natural-log space —
//	kernel computes, for one sequence at a time:
//	  • the terminal posterior δ (maximum joint log-probability per state)
//	  • a memoization tensor of argmax predecessors
//	  • the maximum-probability state path, by backward trace
//
// ✨ Key properties:
//   - Pure functions over flat []float32/[]int32 buffers: no I/O, no
//     allocation beyond the caller-visible outputs and two length-S
//     scratch rows (or none at all with a caller-supplied workspace, see
//     ForwardWithBuffers).
//   - IEEE binary32 arithmetic throughout, via github.com/chewxy/math32,
//     so results are bit-reproducible across platforms without depending
//     on libm's float64 rounding.
//   - Deterministic smallest-index tie-breaking in every argmax.
//   - A pruned variant (ForwardPruned) restricts the O(S²) inner loop to
//     caller-supplied per-frame candidate sets (see package chunk).
//
// ⚙️ Usage:
//
//	ext := kernel.Extent{Frames: f, States: s}
//	res, err := kernel.Forward(logEmission, ext, logTransition, logInitial)
//	path := kernel.Backward(res, ext)
//
// Performance:
//
//   - Time:   Θ(F·S²) per sequence (Θ(F·W²) for ForwardPruned with
//     candidate width W)
//   - Memory: Θ(F·S) per sequence (the memoization tensor is the only
//     frame-sized forward-phase allocation; δ is a two-row double buffer)
package kernel
