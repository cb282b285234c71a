package kernel

import "errors"

// Sentinel errors for kernel package validation.
var (
	// ErrShapeMismatch indicates emissions, transition, and initial
	// distribution disagree on the number of states, or States <= 0.
	ErrShapeMismatch = errors.New("kernel: shape mismatch between emission, transition, and initial distribution")

	// ErrEmptySequence indicates a sequence of zero frames was passed to Forward.
	ErrEmptySequence = errors.New("kernel: sequence length must be greater than zero")

	// ErrNumericInvalid indicates a NaN or +Inf value was found in a
	// log-space emission buffer. The kernel never attempts to mask this;
	// it is treated as caller error.
	ErrNumericInvalid = errors.New("kernel: emission contains NaN or +Inf in log space")

	// ErrCandidateShape indicates ForwardPruned was given a candidate-set
	// slice whose length does not match Extent.Frames.
	ErrCandidateShape = errors.New("kernel: candidate-set length does not match frame count")
)
