// Package reference implements the textbook, probability-space, single-
// sequence Viterbi recurrence. It exists purely as a
// correctness oracle for the optimized log-space batch engine in package
// engine, and for small inputs where the optimized path's extra
// machinery isn't worth it. It is never used in the hot path.
//
// Unlike package kernel, reference works directly in linear probability
// space using gonum.org/v1/gonum/mat dense matrices — float64 precision
// and O(F·S²) time are both acceptable here since this package never runs
// on the large-alphabet, long-sequence workloads the optimized engine
// targets.
package reference
