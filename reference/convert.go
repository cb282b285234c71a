package reference

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DecodeLog is a convenience wrapper around Decode for callers holding
// flat, natural-log-space float32 buffers in the same layout package
// kernel uses (row-major (Frames,States) emission, row-major
// (States,States) transition, length-States initial). It exponentiates
// into float64 probability space and delegates to Decode, letting tests
// compare package kernel's log-space output against this oracle without
// duplicating conversion logic.
func DecodeLog(logEmission []float32, frames, states int, logTransition []float32, logInitial []float32) ([]int32, error) {
	emission := mat.NewDense(frames, states, expAll(logEmission))

	var transition *mat.Dense
	if logTransition != nil {
		transition = mat.NewDense(states, states, expAll(logTransition))
	}

	var initial []float64
	if logInitial != nil {
		initial = make([]float64, states)
		for i, v := range logInitial {
			initial[i] = math.Exp(float64(v))
		}
	}

	return Decode(emission, transition, initial)
}

// expAll exponentiates a flat float32 log-space buffer into a float64
// linear-space slice suitable for mat.NewDense.
func expAll(logValues []float32) []float64 {
	out := make([]float64, len(logValues))
	for i, v := range logValues {
		out[i] = math.Exp(float64(v))
	}

	return out
}
