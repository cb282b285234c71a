package chunk

import "errors"

// Sentinel errors for chunk package validation.
var (
	// ErrEmptyInput indicates the emission matrix has zero frames or states.
	ErrEmptyInput = errors.New("chunk: emission matrix must be non-empty")

	// ErrBadOptions indicates an invalid combination of Options fields.
	ErrBadOptions = errors.New("chunk: invalid options combination")
)

// FrameSet is the set of candidate state indices retained for one frame.
// Indices are in ascending order and unique.
type FrameSet []int32

// Options configures the chunker.
//
// Fields:
//
//	Width       - starting candidate-set size per frame; doubled on
//	              retry (capped at States) until Threshold is met.
//	Threshold   - minimum fraction of a frame's total emission mass that
//	              the selected candidates must retain, in (0,1].
//	ValuesAreLogSpace - whether the emission buffer passed to Chunk holds
//	              natural-log probabilities rather than linear ones; mass
//	              sums are always computed in linear space regardless.
type Options struct {
	Width             int
	Threshold         float64
	ValuesAreLogSpace bool
}

// DefaultOptions returns safe defaults: a starting width of 64 states and
// a 95% mass-retention threshold, assuming linear-space input.
func DefaultOptions() Options {
	return Options{
		Width:             64,
		Threshold:         0.95,
		ValuesAreLogSpace: false,
	}
}

// Validate checks that Options holds a coherent combination of fields.
func (o Options) Validate() error {
	if o.Width <= 0 {
		return ErrBadOptions
	}
	if o.Threshold <= 0 || o.Threshold > 1 {
		return ErrBadOptions
	}

	return nil
}
