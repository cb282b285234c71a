// Package viterbi decodes time-varying categorical distributions into
// the most likely sequence of discrete state indices, using the
// log-space Viterbi forward/backward recurrence.
//
// 🚀 What it does:
//
//	Given per-frame state emission scores, a state-to-state transition
//	matrix, and an initial-state distribution, Decode returns the state
//	path of maximum joint log-probability. DecodeFile and DecodeFiles
//	wrap the same recurrence around package ioformat's binary codec for
//	single-file and many-file batch workloads respectively, the latter
//	driven by package pipeline's concurrent loader/writer pools.
//
// ✨ Key features:
//   - Dense log-space forward/backward kernels (package kernel) in
//     binary32 arithmetic, with deterministic smallest-index
//     tie-breaking.
//   - Optional state-pruning (package chunk) for large alphabets where
//     each frame's emission mass concentrates on a small neighborhood
//     of states.
//   - Batch dispatch with padding/length masking and pluggable CPU or
//     accelerator backends (packages engine, backend).
//   - A probability-space reference decoder (package reference) for
//     correctness testing.
//   - A streaming file pipeline (package pipeline) with a bounded,
//     backpressured writer pool for many-file workloads.
//
// ⚙️ Usage:
//
//	path, err := viterbi.Decode(emission, frames, states, transition, initial, viterbi.DefaultOptions())
//
//	err := viterbi.DecodeFile(ctx, "in.bin", "out.bin", "transition.bin", "", viterbi.DefaultOptions())
//
//	result, err := viterbi.DecodeFiles(ctx, inPaths, outPaths, "transition.bin", "", viterbi.DefaultOptions(
//	  viterbi.WithSaveWorkers(8),
//	))
//
// Out of scope: learning T or π from data, soft (forward-backward)
// decoding, unbounded online decoding, and sparse emission inputs.
package viterbi
