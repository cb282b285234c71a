package pipeline

import "github.com/nyxgraph/viterbi/engine"

// Job names one sequence to load, decode, and save.
type Job struct {
	InputPath  string
	OutputPath string
}

// EmissionLoader loads one sequence's emission scores from storage, in
// linear probability space, as a flat row-major (frames, states) buffer.
type EmissionLoader interface {
	LoadEmission(path string) (data []float32, frames, states int, err error)
}

// MatrixLoader loads a shared row-major matrix (a transition matrix) from
// storage.
type MatrixLoader interface {
	LoadMatrix(path string) (data []float32, rows, cols int, err error)
}

// IndexSaver persists one sequence's decoded state-index path.
type IndexSaver interface {
	SaveIndices(path string, indices []int32) error
}

// Codec is the storage abstraction Run depends on. Package ioformat
// provides the default implementation; callers may substitute any type
// satisfying it.
type Codec interface {
	EmissionLoader
	MatrixLoader
	IndexSaver
}

// Config configures one Run call.
//
//	BatchSize   - sequences per decode batch.
//	LoadWorkers - concurrent emission loaders (0 defaults to 4).
//	SaveWorkers - 0 saves synchronously on the collator goroutine; any
//	              value > 0 saves asynchronously, one goroutine per save,
//	              with the number of concurrent saves bounded by
//	              QueueDepth, not by this value.
//	QueueDepth  - bound on outstanding save tasks when SaveWorkers > 0;
//	              the collator blocks once this many saves are queued.
//	Progress    - optional callback invoked after each batch completes,
//	              reporting sequences completed so far and the total.
type Config struct {
	BatchSize   int
	LoadWorkers int
	SaveWorkers int
	QueueDepth  int
	Progress    func(completed, total int)
}

// DefaultConfig returns a Config that batches 32 sequences at a time,
// loads with 4 concurrent workers, and saves synchronously.
func DefaultConfig() Config {
	return Config{
		BatchSize:   32,
		LoadWorkers: 4,
		SaveWorkers: 0,
		QueueDepth:  100,
	}
}

// Result reports the outcome of a Run call.
type Result struct {
	// OutputFiles maps input path to output path for every job that was
	// loaded, decoded, and saved successfully.
	OutputFiles map[string]string
	// ReadFailures lists jobs whose emission failed to load.
	ReadFailures []ReadError
	// WriteFailures lists jobs that decoded successfully but failed to
	// save.
	WriteFailures []WriteError
}

// Input bundles the shared decode configuration a Run call needs beyond
// the per-job emission data: the engine, its decode Config, and the
// shared transition/initial distributions (loaded once, or nil for
// uniform).
type Input struct {
	Engine     *engine.Engine
	Config     engine.Config
	Transition []float32
	Initial    []float32
}
