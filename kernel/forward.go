package kernel

import "github.com/chewxy/math32"

// Forward runs the dense, log-space Viterbi forward recurrence for a
// single sequence.
//
// Inputs:
//
//	logEmission   flat (Frames, States) buffer, row-major, natural log space
//	ext           shape of logEmission
//	logTransition flat (States, States) buffer, row-major, natural log
//	              space; logTransition[i*States+j] = log P(state j at t+1 | state i at t)
//	logInitial    length-States buffer, natural log space
//
// Recurrence:
//
//	δ_0[s]    = logInitial[s] + logEmission[0,s];  Memo[0,s] = 0
//	δ_t[j]    = max_i (δ_{t-1}[i] + logTransition[i,j]) + logEmission[t,j]
//	Memo[t,j] = argmin{i : achieves the max}   (smallest index wins ties)
//
// Forward calls Validate first and returns its ShapeMismatch or
// EmptySequence error; past that it is infallible. It does not check for
// NaN or +Inf values (see CheckFinite).
func Forward(logEmission []float32, ext Extent, logTransition []float32, logInitial []float32) (ForwardResult, error) {
	if err := Validate(ext, len(logTransition), len(logInitial)); err != nil {
		return ForwardResult{}, err
	}

	res := newForwardResult(ext)
	ForwardWithBuffers(logEmission, ext, logTransition, logInitial, res, make([]float32, ext.States), make([]float32, ext.States))

	return res, nil
}

// ForwardWithBuffers runs the same recurrence as Forward but writes into a
// caller-supplied ForwardResult (Memo sized Frames*States, Posterior sized
// States) using caller-supplied prev/curr scratch rows (each sized
// States), and allocates nothing itself. It does not validate its inputs;
// callers run Validate first. The CPU backend uses it to fill the pooled
// workspace (engine.Pool) in place.
//
// prev and curr are swapped in place; callers must not assume which one
// holds the final row after return (use res.Posterior).
func ForwardWithBuffers(logEmission []float32, ext Extent, logTransition []float32, logInitial []float32, res ForwardResult, prev, curr []float32) {
	states := ext.States

	// Initialization: δ_0[s] = logInitial[s] + logEmission[0,s]; Memo[0,*] = 0.
	for s := 0; s < states; s++ {
		prev[s] = logInitial[s] + logEmission[ext.at(0, s)]
		// Memo[0,*] is unused; it is written as zero because a pooled
		// workspace may hand back a buffer holding an earlier call's values.
		res.Memo[ext.at(0, s)] = 0
	}

	for t := 1; t < ext.Frames; t++ {
		rowStart := ext.at(t, 0)
		memoRow := res.Memo[rowStart : rowStart+states]
		for j := 0; j < states; j++ {
			bestScore := negInf
			bestPred := 0
			for i := 0; i < states; i++ {
				score := prev[i] + logTransition[i*states+j]
				// Strict '>' keeps the first (smallest-index) i that
				// attains the maximum: the pinned tie-break rule.
				if score > bestScore {
					bestScore = score
					bestPred = i
				}
			}
			memoRow[j] = int32(bestPred)
			curr[j] = bestScore + logEmission[ext.at(t, j)]
		}
		prev, curr = curr, prev
	}

	copy(res.Posterior, prev)
}

// negInf is float32 negative infinity, the forward recurrence's identity
// element for max; -Inf + finite = -Inf, and -Inf never wins an argmax
// against a finite score.
var negInf = math32.Inf(-1)
