// Package backend defines the capability abstraction the batch engine
// uses to run the forward recurrence on CPU or on an accelerator.
//
// A Backend exposes exactly two operations — AllocateWorkspace and
// Forward — so that package engine is otherwise ignorant of where the
// Θ(F·S²) work actually runs. This mirrors the dispatch-level selection
// in janpfeifer-go-highway's hwy.DispatchLevel (SIMD level chosen once,
// then every op call is capability-agnostic), adapted here from
// instruction-set selection to CPU/accelerator-id selection.
//
// One CPU implementation ships in this package (cpuBackend, in cpu.go),
// parallelized across batch elements with golang.org/x/sync/errgroup.
// Accelerator implementations are out of scope — a caller
// registers one satisfying the Backend interface via Register.
package backend
