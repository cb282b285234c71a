package engine

import (
	"sync"

	"github.com/nyxgraph/viterbi/backend"
	"github.com/nyxgraph/viterbi/kernel"
)

// Pool amortizes Workspace allocation across Decode calls. The zero
// value is ready to use.
type Pool struct {
	pool sync.Pool
}

// get returns a *backend.Workspace sized for extents, reusing a pooled
// one when it holds at least len(extents) sequence slots and resizing each
// slot's buffers as needed. A reused buffer whose length already matches
// is handed back without being zeroed.
func (p *Pool) get(extents []kernel.Extent) *backend.Workspace {
	v := p.pool.Get()
	if v == nil {
		return freshWorkspace(extents)
	}

	ws := v.(*backend.Workspace)
	if len(ws.Posterior) < len(extents) {
		return freshWorkspace(extents)
	}

	ws.Posterior = ws.Posterior[:len(extents)]
	ws.Memo = ws.Memo[:len(extents)]
	for i, ext := range extents {
		ws.Posterior[i] = growFloat32(ws.Posterior[i], ext.States)
		ws.Memo[i] = growInt32(ws.Memo[i], ext.Frames*ext.States)
	}

	return ws
}

// put returns ws to the pool for reuse by a later Decode call.
func (p *Pool) put(ws *backend.Workspace) {
	p.pool.Put(ws)
}

func freshWorkspace(extents []kernel.Extent) *backend.Workspace {
	ws := &backend.Workspace{
		Posterior: make([][]float32, len(extents)),
		Memo:      make([][]int32, len(extents)),
	}
	for i, ext := range extents {
		ws.Posterior[i] = make([]float32, ext.States)
		ws.Memo[i] = make([]int32, ext.Frames*ext.States)
	}

	return ws
}

// growFloat32 returns xs if it already has length n, a zeroed slice of
// length n reusing xs's backing array if it has enough capacity, or a
// freshly allocated slice of length n otherwise.
func growFloat32(xs []float32, n int) []float32 {
	if len(xs) == n {
		return xs
	}
	if cap(xs) >= n {
		xs = xs[:n]
		for i := range xs {
			xs[i] = 0
		}
		return xs
	}

	return make([]float32, n)
}

// growInt32 is growFloat32 for []int32.
func growInt32(xs []int32, n int) []int32 {
	if len(xs) == n {
		return xs
	}
	if cap(xs) >= n {
		xs = xs[:n]
		for i := range xs {
			xs[i] = 0
		}
		return xs
	}

	return make([]int32, n)
}
