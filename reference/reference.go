package reference

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Decode performs probability-space dense Viterbi decoding of one
// sequence. emission is (Frames, States); transition is (States, States)
// or nil for uniform 1/States; initial is length States or nil for
// uniform 1/States. All three are in linear probability space, not log
// space — see DecodeLog for a log-space convenience wrapper.
//
// Decode produces the same index path as the optimized engine (package
// engine) when run unpruned on finite inputs. Ties are broken in favor
// of the smallest index, matching package kernel.
//
// Each frame's δ row is rescaled to sum to one before the next induction
// step (Rabiner's scaling trick): every entry in a row is multiplied by
// the same positive scalar, so the argmax that selects memo[t][j] is
// unaffected, but δ never drifts toward the float64 underflow a
// long, wide sequence would otherwise hit by repeatedly multiplying
// probabilities below one.
func Decode(emission *mat.Dense, transition *mat.Dense, initial []float64) ([]int32, error) {
	frames, states := emission.Dims()
	if states == 0 {
		return nil, ErrShapeMismatch
	}
	if frames == 0 {
		return nil, ErrEmptySequence
	}
	if transition != nil {
		tr, tc := transition.Dims()
		if tr != states || tc != states {
			return nil, ErrShapeMismatch
		}
	}
	if initial != nil && len(initial) != states {
		return nil, ErrShapeMismatch
	}

	pi := initial
	if pi == nil {
		pi = uniform(states)
	}
	trans := transition
	if trans == nil {
		trans = uniformSquare(states)
	}

	delta := mat.NewDense(frames, states, nil)
	memo := make([][]int32, frames)
	for t := range memo {
		memo[t] = make([]int32, states)
	}

	for s := 0; s < states; s++ {
		delta.Set(0, s, pi[s]*emission.At(0, s))
	}
	rescaleRow(delta, 0, states)

	for t := 1; t < frames; t++ {
		for j := 0; j < states; j++ {
			bestScore := delta.At(t-1, 0) * trans.At(0, j)
			bestPred := 0
			for i := 1; i < states; i++ {
				score := delta.At(t-1, i) * trans.At(i, j)
				if score > bestScore {
					bestScore = score
					bestPred = i
				}
			}
			memo[t][j] = int32(bestPred)
			delta.Set(t, j, bestScore*emission.At(t, j))
		}
		rescaleRow(delta, t, states)
	}

	path := make([]int32, frames)
	path[frames-1] = int32(argmaxRow(delta, frames-1, states))
	for t := frames - 2; t >= 0; t-- {
		path[t] = memo[t+1][path[t+1]]
	}

	return path, nil
}

// rescaleRow divides row t of m by its sum, in place, so the row's
// entries sum to one. A row of all zeros (every candidate path has
// probability zero) is left untouched: there is nothing left to scale,
// and the tail of the decode degrades the same way a dense textbook
// implementation would.
func rescaleRow(m *mat.Dense, t, states int) {
	row := make([]float64, states)
	for j := 0; j < states; j++ {
		row[j] = m.At(t, j)
	}

	total := floats.Sum(row)
	if total == 0 {
		return
	}
	for j, v := range row {
		m.Set(t, j, v/total)
	}
}

// argmaxRow returns the column index of the largest value in row t of m,
// breaking ties in favor of the smallest index.
func argmaxRow(m *mat.Dense, t, states int) int {
	best := 0
	bestScore := m.At(t, 0)
	for j := 1; j < states; j++ {
		if v := m.At(t, j); v > bestScore {
			bestScore = v
			best = j
		}
	}

	return best
}

// uniform returns a length-n slice with every entry 1/n.
func uniform(n int) []float64 {
	xs := make([]float64, n)
	p := 1.0 / float64(n)
	for i := range xs {
		xs[i] = p
	}

	return xs
}

// uniformSquare returns an n x n gonum matrix with every entry 1/n.
func uniformSquare(n int) *mat.Dense {
	data := make([]float64, n*n)
	p := 1.0 / float64(n)
	for i := range data {
		data[i] = p
	}

	return mat.NewDense(n, n, data)
}
