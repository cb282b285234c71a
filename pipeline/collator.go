package pipeline

import "github.com/nyxgraph/viterbi/engine"

// buildDescriptor assembles a padded BatchDescriptor from a group of
// loaded sequences sharing one state count, right-padding every emission
// buffer to the widest sequence in the group with zeros — never read,
// since BatchDescriptor.L records each sequence's true length.
func buildDescriptor(items []loaded, transition, initial []float32) (engine.BatchDescriptor, error) {
	states := items[0].states
	fmax := 0
	for _, it := range items {
		if it.states != states {
			return engine.BatchDescriptor{}, ErrStateMismatch
		}
		if it.frames > fmax {
			fmax = it.frames
		}
	}

	padded := make([][]float32, len(items))
	lengths := make([]int, len(items))
	for i, it := range items {
		buf := make([]float32, fmax*states)
		copy(buf, it.data)
		padded[i] = buf
		lengths[i] = it.frames
	}

	return engine.BatchDescriptor{
		PaddedEmission: padded,
		L:              lengths,
		States:         states,
		Transition:     transition,
		Initial:        initial,
	}, nil
}
