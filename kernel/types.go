package kernel

// Extent describes the shape of one sequence's emission matrix: Frames
// rows (F) by States columns (S). All flat buffers in this package are
// row-major with respect to this extent unless documented otherwise.
type Extent struct {
	Frames int
	States int
}

// Valid reports whether the extent describes a non-empty, well-formed
// sequence.
func (e Extent) Valid() bool {
	return e.Frames > 0 && e.States > 0
}

// at returns the flat index of emission row t, state s for this extent.
func (e Extent) at(t, s int) int {
	return t*e.States + s
}

// ForwardResult holds the outputs of one sequence's forward pass: the
// terminal posterior δ (length States) and the memoization tensor Memo
// (length Frames*States, row-major, contiguous along States for
// unit-stride writes). Memo[0*States:1*States] is unused and left zero
// by convention.
type ForwardResult struct {
	Posterior []float32
	Memo      []int32
}

// newForwardResult allocates a ForwardResult sized for ext. Callers that
// decode many sequences should prefer workspace reuse (see engine.Pool)
// over repeated allocation through this constructor.
func newForwardResult(ext Extent) ForwardResult {
	return ForwardResult{
		Posterior: make([]float32, ext.States),
		Memo:      make([]int32, ext.Frames*ext.States),
	}
}
