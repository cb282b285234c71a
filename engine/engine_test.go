package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nyxgraph/viterbi/backend"
	"github.com/nyxgraph/viterbi/engine"
)

func TestEngine_decodesScenariosAAndBSeparately(t *testing.T) {
	eng := engine.New()

	// scenario A: identity transition pins state 0.
	aEmission := []float32{
		1.0 / 3, 1.0 / 3, 1.0 / 3,
		1.0 / 3, 1.0 / 3, 1.0 / 3,
		1.0 / 3, 1.0 / 3, 1.0 / 3,
		1.0 / 3, 1.0 / 3, 1.0 / 3,
	}
	aTransition := []float32{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
	aInitial := []float32{1, 0, 0}

	// scenario B: sticky two-state transition, cut to its first four
	// frames and widened with a third state that has zero emission,
	// initial and cross-transition mass; that extra state must never be
	// chosen.
	bEmission := []float32{
		0.8, 0.2, 0,
		0.8, 0.2, 0,
		0.2, 0.8, 0,
		0.2, 0.8, 0,
	}
	bTransition := []float32{
		0.9, 0.1, 0,
		0.1, 0.9, 0,
		0, 0, 1,
	}
	bInitial := []float32{0.5, 0.5, 0}

	// Each sequence in this test carries its own transition/initial, so
	// decode them individually instead of sharing one matrix across a
	// batch; this still exercises the same batch-dispatch code path once
	// per sequence.
	pathsA, err := eng.Decode(context.Background(), engine.BatchDescriptor{
		PaddedEmission: [][]float32{aEmission},
		L:              []int{4},
		States:         3,
		Transition:     aTransition,
		Initial:        aInitial,
	}, engine.DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, []int32{0, 0, 0, 0}, pathsA[0])

	pathsB, err := eng.Decode(context.Background(), engine.BatchDescriptor{
		PaddedEmission: [][]float32{bEmission},
		L:              []int{4},
		States:         3,
		Transition:     bTransition,
		Initial:        bInitial,
	}, engine.DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, []int32{0, 0, 1, 1}, pathsB[0])
}

func TestEngine_paddingRegionNeverInspected(t *testing.T) {
	eng := engine.New()

	emission := []float32{
		0.8, 0.2,
		0.8, 0.2,
		0.2, 0.8,
	}
	padded := append(append([]float32{}, emission...), 999, 999)

	bdShort := engine.BatchDescriptor{
		PaddedEmission: [][]float32{emission},
		L:              []int{3},
		States:         2,
	}
	bdPadded := engine.BatchDescriptor{
		PaddedEmission: [][]float32{padded},
		L:              []int{3},
		States:         2,
	}

	pathsShort, err := eng.Decode(context.Background(), bdShort, engine.DefaultConfig())
	require.NoError(t, err)
	pathsPadded, err := eng.Decode(context.Background(), bdPadded, engine.DefaultConfig())
	require.NoError(t, err)

	require.Equal(t, pathsShort[0], pathsPadded[0])
}

func TestEngine_defaultsToUniformTransitionAndInitial(t *testing.T) {
	eng := engine.New()
	bd := engine.BatchDescriptor{
		PaddedEmission: [][]float32{{
			0.4, 0.3, 0.2, 0.1,
			0.1, 0.4, 0.3, 0.2,
			0.2, 0.1, 0.4, 0.3,
		}},
		L:      []int{3},
		States: 4,
	}

	paths, err := eng.Decode(context.Background(), bd, engine.DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, []int32{0, 1, 2}, paths[0])
}

func TestEngine_emptyBatch(t *testing.T) {
	eng := engine.New()
	_, err := eng.Decode(context.Background(), engine.BatchDescriptor{}, engine.DefaultConfig())
	require.Error(t, err)
}

func TestEngine_unavailableDevice(t *testing.T) {
	eng := engine.New()
	bd := engine.BatchDescriptor{
		PaddedEmission: [][]float32{{0.5, 0.5}},
		L:              []int{1},
		States:         2,
	}

	_, err := eng.Decode(context.Background(), bd, engine.DefaultConfig(engine.WithDevice(backend.Device(9))))
	require.ErrorIs(t, err, backend.ErrBackendUnavailable)
}
