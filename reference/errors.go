package reference

import "errors"

// Sentinel errors for reference package validation.
var (
	// ErrShapeMismatch indicates emission, transition, and initial
	// distribution disagree on the number of states, or the emission
	// matrix has zero states.
	ErrShapeMismatch = errors.New("reference: shape mismatch between emission, transition, and initial distribution")

	// ErrEmptySequence indicates the emission matrix has zero frames.
	ErrEmptySequence = errors.New("reference: sequence length must be greater than zero")
)
