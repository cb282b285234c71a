package kernel

// ForwardPruned runs the forward recurrence restricted to a per-frame
// candidate-state list, as produced by package chunk. For
// frame t, δ_t[j] is computed only for j in candidates[t], and the
// predecessor search for such j iterates only over i in
// candidates[t-1] (candidates[0] for the first induction step). Every
// state outside candidates[t] has δ_t[state] = -Inf.
//
// candidates must have length ext.Frames; each candidates[t] is a
// slice of state indices in [0,States), not required to be sorted but
// assumed not to contain duplicates.
//
// ForwardPruned is a lossy approximation of Forward: it is only
// guaranteed to match Forward when every candidate set is the full
// [0,States) range. It is guaranteed to match a dense Forward run whose
// support is first restricted to the same candidate sets.
func ForwardPruned(logEmission []float32, ext Extent, logTransition []float32, logInitial []float32, candidates [][]int32) (ForwardResult, error) {
	if err := Validate(ext, len(logTransition), len(logInitial)); err != nil {
		return ForwardResult{}, err
	}
	if len(candidates) != ext.Frames {
		return ForwardResult{}, ErrCandidateShape
	}

	states := ext.States
	res := newForwardResult(ext)
	prev := fullOf(states, negInf)
	curr := fullOf(states, negInf)

	for _, s := range candidates[0] {
		prev[s] = logInitial[s] + logEmission[ext.at(0, int(s))]
	}

	for t := 1; t < ext.Frames; t++ {
		rowStart := ext.at(t, 0)
		memoRow := res.Memo[rowStart : rowStart+states]
		for _, jj := range candidates[t] {
			j := int(jj)
			bestScore := negInf
			bestPred := 0
			for _, ii := range candidates[t-1] {
				i := int(ii)
				score := prev[i] + logTransition[i*states+j]
				if score > bestScore {
					bestScore = score
					bestPred = i
				}
			}
			memoRow[j] = int32(bestPred)
			curr[j] = bestScore + logEmission[ext.at(t, j)]
		}
		// Reset the rows for reuse: states not in this frame's candidate
		// set must read back as -Inf on the next iteration's predecessor
		// scan (t+1 reads prev == curr from this iteration).
		for _, jj := range candidates[t-1] {
			prev[jj] = negInf
		}
		prev, curr = curr, prev
	}

	copy(res.Posterior, prev)

	return res, nil
}

// fullOf returns a new []float32 of length n with every element set to v.
func fullOf(n int, v float32) []float32 {
	xs := make([]float32, n)
	for i := range xs {
		xs[i] = v
	}

	return xs
}
