package viterbi

import (
	"context"

	"github.com/nyxgraph/viterbi/engine"
	"github.com/nyxgraph/viterbi/ioformat"
	"github.com/nyxgraph/viterbi/pipeline"
)

// shared is the package-level Engine every entry point dispatches
// through; its Pool amortizes workspace allocation across calls.
var shared = engine.New()

// Decode returns the maximum-joint-log-probability state path for one
// sequence. emission is a flat row-major (frames, states) buffer.
// transition (flat (states, states)) and initial (length states) may be
// nil, defaulting to uniform.
func Decode(emission []float32, frames, states int, transition, initial []float32, opts Options) ([]int32, error) {
	return decodeOne(context.Background(), emission, frames, states, transition, initial, opts)
}

func decodeOne(ctx context.Context, emission []float32, frames, states int, transition, initial []float32, opts Options) ([]int32, error) {
	bd := engine.BatchDescriptor{
		PaddedEmission: [][]float32{emission},
		L:              []int{frames},
		States:         states,
		Transition:     transition,
		Initial:        initial,
	}

	paths, err := shared.Decode(ctx, bd, opts.engineConfig())
	if err != nil {
		return nil, err
	}

	return paths[0], nil
}

// DecodeFile loads emission from inPath, optionally loads a shared
// transition/initial distribution, decodes, and saves the resulting
// index path to outPath, all through package ioformat's binary codec.
// An empty transitionPath or initialPath defaults to uniform.
func DecodeFile(ctx context.Context, inPath, outPath, transitionPath, initialPath string, opts Options) error {
	codec := ioformat.Codec{}

	emission, frames, states, err := codec.LoadEmission(inPath)
	if err != nil {
		return err
	}

	transition, err := loadOptionalMatrix(codec, transitionPath)
	if err != nil {
		return err
	}
	initial, err := loadOptionalVector(codec, initialPath)
	if err != nil {
		return err
	}

	indices, err := decodeOne(ctx, emission, frames, states, transition, initial, opts)
	if err != nil {
		return err
	}

	return codec.SaveIndices(outPath, indices)
}

// DecodeFiles decodes many sequences through package pipeline, sharing
// one transition/initial distribution (loaded once) across every
// sequence. inPaths and outPaths must have the same length; outPaths[i]
// receives the decoded path for inPaths[i].
func DecodeFiles(ctx context.Context, inPaths, outPaths []string, transitionPath, initialPath string, opts Options) (pipeline.Result, error) {
	if len(inPaths) != len(outPaths) {
		return pipeline.Result{}, ErrPathCountMismatch
	}

	codec := ioformat.Codec{}

	transition, err := loadOptionalMatrix(codec, transitionPath)
	if err != nil {
		return pipeline.Result{}, err
	}
	initial, err := loadOptionalVector(codec, initialPath)
	if err != nil {
		return pipeline.Result{}, err
	}

	jobs := make([]pipeline.Job, len(inPaths))
	for i := range inPaths {
		jobs[i] = pipeline.Job{InputPath: inPaths[i], OutputPath: outPaths[i]}
	}

	in := pipeline.Input{
		Engine:     shared,
		Config:     opts.engineConfig(),
		Transition: transition,
		Initial:    initial,
	}

	return pipeline.Run(ctx, codec, jobs, in, opts.pipelineConfig())
}

// loadOptionalMatrix loads path via codec.LoadMatrix, returning nil
// without error when path is empty.
func loadOptionalMatrix(codec ioformat.Codec, path string) ([]float32, error) {
	if path == "" {
		return nil, nil
	}

	data, _, _, err := codec.LoadMatrix(path)
	return data, err
}

// loadOptionalVector loads path via codec.LoadVector, returning nil
// without error when path is empty. Used for the initial distribution,
// which is stored as a self-describing rank-1 file rather than padded
// into a single-row matrix.
func loadOptionalVector(codec ioformat.Codec, path string) ([]float32, error) {
	if path == "" {
		return nil, nil
	}

	data, _, err := codec.LoadVector(path)
	return data, err
}
