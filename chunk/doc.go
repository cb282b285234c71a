// Package chunk implements the optional state-pruning heuristic used when
// the state alphabet S is large but each frame's emission mass
// concentrates on a small neighborhood of states — for
// example pitch tracking over 1440 bins, where only a handful of bins
// near the true pitch ever carry meaningful probability.
//
// 🚀 What it does:
//
//	For each frame, Chunk keeps the highest-mass states, trying widths
//	Width, 2·Width, 4·Width, ... (capped at the full state range) and
//	stopping at the first width whose retained probability mass meets a
//	configured threshold. The set is therefore not always the smallest
//	one that meets the threshold. The result is consumed by
//	kernel.ForwardPruned, which restricts the O(S²) inner loop of the
//	forward recurrence to these candidates.
//
// ✨ Key properties:
//   - Lossy by design: results are only required to match a reference
//     decoder restricted to the same pruned support, not the unpruned
//     decoder.
//   - Deterministic: ties in per-state mass are broken by state index, so
//     the same input always produces the same candidate sets.
//   - Falls back to the full [0,S) range if no width up to S satisfies
//     the threshold.
package chunk
