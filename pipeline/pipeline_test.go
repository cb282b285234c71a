package pipeline_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nyxgraph/viterbi/engine"
	"github.com/nyxgraph/viterbi/pipeline"
)

// memCodec is an in-memory pipeline.Codec used only for tests: emissions
// are pre-seeded by path, saved indices land back in a map guarded by a
// mutex since the writer pool may save concurrently.
type memCodec struct {
	mu        sync.Mutex
	emissions map[string][]float32
	frames    map[string]int
	states    int
	failLoad  map[string]bool
	failSave  map[string]bool
	saved     map[string][]int32
}

func newMemCodec(states int) *memCodec {
	return &memCodec{
		emissions: make(map[string][]float32),
		frames:    make(map[string]int),
		states:    states,
		failLoad:  make(map[string]bool),
		failSave:  make(map[string]bool),
		saved:     make(map[string][]int32),
	}
}

func (c *memCodec) seed(path string, frames int, emission []float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.emissions[path] = emission
	c.frames[path] = frames
}

func (c *memCodec) LoadEmission(path string) ([]float32, int, int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failLoad[path] {
		return nil, 0, 0, fmt.Errorf("memCodec: forced load failure for %s", path)
	}
	data, ok := c.emissions[path]
	if !ok {
		return nil, 0, 0, fmt.Errorf("memCodec: no fixture for %s", path)
	}
	return data, c.frames[path], c.states, nil
}

func (c *memCodec) LoadMatrix(path string) ([]float32, int, int, error) {
	return nil, 0, 0, fmt.Errorf("memCodec: LoadMatrix not used in this test")
}

func (c *memCodec) SaveIndices(path string, indices []int32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failSave[path] {
		return fmt.Errorf("memCodec: forced save failure for %s", path)
	}
	cp := make([]int32, len(indices))
	copy(cp, indices)
	c.saved[path] = cp
	return nil
}

func TestRun_decodesAndSavesEverySequence(t *testing.T) {
	codec := newMemCodec(2)
	codec.seed("a.in", 3, []float32{0.8, 0.2, 0.8, 0.2, 0.2, 0.8})
	codec.seed("b.in", 2, []float32{0.2, 0.8, 0.2, 0.8})

	jobs := []pipeline.Job{
		{InputPath: "a.in", OutputPath: "a.out"},
		{InputPath: "b.in", OutputPath: "b.out"},
	}

	in := pipeline.Input{Engine: engine.New(), Config: engine.DefaultConfig()}
	cfg := pipeline.DefaultConfig()
	cfg.BatchSize = 1

	result, err := pipeline.Run(context.Background(), codec, jobs, in, cfg)
	require.NoError(t, err)
	require.Empty(t, result.ReadFailures)
	require.Empty(t, result.WriteFailures)
	require.Equal(t, map[string]string{"a.in": "a.out", "b.in": "b.out"}, result.OutputFiles)
	require.Len(t, codec.saved["a.out"], 3)
	require.Len(t, codec.saved["b.out"], 2)
}

func TestRun_collectsReadFailuresWithoutAbortingSiblings(t *testing.T) {
	codec := newMemCodec(2)
	codec.seed("a.in", 2, []float32{0.8, 0.2, 0.8, 0.2})
	codec.failLoad["missing.in"] = true

	jobs := []pipeline.Job{
		{InputPath: "missing.in", OutputPath: "missing.out"},
		{InputPath: "a.in", OutputPath: "a.out"},
	}

	in := pipeline.Input{Engine: engine.New(), Config: engine.DefaultConfig()}
	result, err := pipeline.Run(context.Background(), codec, jobs, in, pipeline.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, result.ReadFailures, 1)
	require.Equal(t, "missing.in", result.ReadFailures[0].Path)
	require.Equal(t, map[string]string{"a.in": "a.out"}, result.OutputFiles)
}

func TestRun_collectsWriteFailuresWithoutAbortingSiblings(t *testing.T) {
	codec := newMemCodec(2)
	codec.seed("a.in", 2, []float32{0.8, 0.2, 0.8, 0.2})
	codec.seed("b.in", 2, []float32{0.2, 0.8, 0.2, 0.8})
	codec.failSave["a.out"] = true

	jobs := []pipeline.Job{
		{InputPath: "a.in", OutputPath: "a.out"},
		{InputPath: "b.in", OutputPath: "b.out"},
	}

	in := pipeline.Input{Engine: engine.New(), Config: engine.DefaultConfig()}
	cfg := pipeline.DefaultConfig()
	cfg.SaveWorkers = 2
	cfg.QueueDepth = 4

	result, err := pipeline.Run(context.Background(), codec, jobs, in, cfg)
	require.NoError(t, err)
	require.Len(t, result.WriteFailures, 1)
	require.Equal(t, "a.out", result.WriteFailures[0].Path)
	require.Equal(t, map[string]string{"b.in": "b.out"}, result.OutputFiles)
}

func TestRun_noJobs(t *testing.T) {
	codec := newMemCodec(2)
	_, err := pipeline.Run(context.Background(), codec, nil, pipeline.Input{}, pipeline.DefaultConfig())
	require.ErrorIs(t, err, pipeline.ErrNoJobs)
}
