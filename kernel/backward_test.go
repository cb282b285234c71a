package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nyxgraph/viterbi/kernel"
)

func TestBackward_tieBreaksToSmallestIndex(t *testing.T) {
	ext := kernel.Extent{Frames: 1, States: 3}
	res := kernel.ForwardResult{
		Posterior: []float32{-1, -1, -1},
		Memo:      make([]int32, 3),
	}

	path := kernel.Backward(res, ext)
	require.Equal(t, []int32{0}, path)
}

func TestBackward_walksMemoizationChain(t *testing.T) {
	ext := kernel.Extent{Frames: 3, States: 2}
	res := kernel.ForwardResult{
		Posterior: []float32{0, 5},
		Memo: []int32{
			0, 0, // frame 0, unused
			1, 0, // frame 1: predecessor of state0 is 1, of state1 is 0
			0, 1, // frame 2: predecessor of state0 is 0, of state1 is 1
		},
	}

	path := kernel.Backward(res, ext)
	// path[2] = argmax(posterior) = 1
	// path[1] = Memo[2, 1] = 1
	// path[0] = Memo[1, 1] = 0
	require.Equal(t, []int32{0, 1, 1}, path)
}
