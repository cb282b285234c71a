package viterbi_test

import (
	"fmt"

	"github.com/nyxgraph/viterbi"
)

// ExampleDecode_identityTransition decodes scenario A: an identity
// transition matrix and a point-mass initial distribution pin every
// frame to state 0 regardless of emission.
func ExampleDecode_identityTransition() {
	states, frames := 3, 4
	initial := []float32{1, 0, 0}
	transition := []float32{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
	emission := make([]float32, frames*states)
	for i := range emission {
		emission[i] = 1.0 / 3
	}

	path, err := viterbi.Decode(emission, frames, states, transition, initial, viterbi.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [0 0 0 0]
}

// ExampleDecode_stickyTransition decodes scenario B: a two-state
// sticky transition matrix tracks an emission signal that shifts from
// favoring state 0 to favoring state 1 partway through the sequence.
func ExampleDecode_stickyTransition() {
	states, frames := 2, 5
	initial := []float32{0.5, 0.5}
	transition := []float32{
		0.9, 0.1,
		0.1, 0.9,
	}
	emission := []float32{
		0.8, 0.2,
		0.8, 0.2,
		0.2, 0.8,
		0.2, 0.8,
		0.2, 0.8,
	}

	path, err := viterbi.Decode(emission, frames, states, transition, initial, viterbi.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [0 0 1 1 1]
}

// ExampleDecode_uniformTransition decodes scenario C: a uniform
// transition matrix and uniform initial distribution reduce Decode to
// the per-frame emission argmax.
func ExampleDecode_uniformTransition() {
	states, frames := 4, 3
	emission := []float32{
		0.4, 0.3, 0.2, 0.1,
		0.1, 0.4, 0.3, 0.2,
		0.2, 0.1, 0.4, 0.3,
	}

	path, err := viterbi.Decode(emission, frames, states, nil, nil, viterbi.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [0 1 2]
}

// ExampleDecode_singleState decodes scenario E: a single-state alphabet
// always produces a zero-valued index path.
func ExampleDecode_singleState() {
	states, frames := 1, 10
	emission := make([]float32, frames)
	for i := range emission {
		emission[i] = 1
	}

	path, err := viterbi.Decode(emission, frames, states, nil, nil, viterbi.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [0 0 0 0 0 0 0 0 0 0]
}
