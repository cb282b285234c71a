package chunk

import (
	"sort"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/floats"

	"github.com/nyxgraph/viterbi/kernel"
)

// Chunk computes a per-frame candidate-state list for emission, a flat
// (Frames, States) buffer shaped by ext: for each frame t,
// the returned FrameSet C_t satisfies |C_t| <= some width W >= opts.Width
// and sum_{s in C_t} mass[t,s] >= opts.Threshold * sum_s mass[t,s], where
// mass is emission converted to linear probability space. If no W up to
// States meets the threshold, C_t falls back to the full [0,States) range.
func Chunk(emission []float32, ext kernel.Extent, opts Options) ([]FrameSet, error) {
	if !ext.Valid() {
		return nil, ErrEmptyInput
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	sets := make([]FrameSet, ext.Frames)
	mass := make([]float64, ext.States)
	order := make([]int, ext.States)

	for t := 0; t < ext.Frames; t++ {
		row := emission[t*ext.States : (t+1)*ext.States]
		for s, v := range row {
			if opts.ValuesAreLogSpace {
				mass[s] = float64(math32.Exp(v))
			} else {
				mass[s] = float64(v)
			}
			order[s] = s
		}

		total := floats.Sum(mass)
		sort.Slice(order, func(a, b int) bool {
			if mass[order[a]] != mass[order[b]] {
				return mass[order[a]] > mass[order[b]]
			}
			return order[a] < order[b] // deterministic tie-break
		})

		sets[t] = selectWidth(order, mass, total, opts.Width, ext.States, opts.Threshold)
	}

	return sets, nil
}

// selectWidth grows the candidate width starting at width, doubling each
// time the retained mass falls short of threshold*total, until the
// threshold is met or width reaches states (the full range).
func selectWidth(order []int, mass []float64, total float64, width, states int, threshold float64) FrameSet {
	target := threshold * total
	w := width
	if w > states {
		w = states
	}

	for {
		retained := 0.0
		for i := 0; i < w; i++ {
			retained += mass[order[i]]
		}
		if retained >= target || w >= states {
			return toFrameSet(order[:w])
		}
		if w*2 > states {
			w = states
		} else {
			w *= 2
		}
	}
}

// toFrameSet copies and ascending-sorts candidate indices into a FrameSet.
func toFrameSet(indices []int) FrameSet {
	out := make(FrameSet, len(indices))
	for i, v := range indices {
		out[i] = int32(v)
	}
	sort.Slice(out, func(a, b int) bool { return out[a] < out[b] })

	return out
}
