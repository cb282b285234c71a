package engine

import "errors"

// Sentinel errors for the engine package.
var (
	// ErrShapeMismatch indicates the batch descriptor's per-sequence
	// emission buffers, length vector, transition, or initial
	// distribution disagree in shape.
	ErrShapeMismatch = errors.New("engine: shape mismatch in batch descriptor")

	// ErrEmptyBatch indicates a BatchDescriptor with zero sequences.
	ErrEmptyBatch = errors.New("engine: batch must contain at least one sequence")
)
