// Package pipeline drives many-sequence decoding from and to disk: a
// loader pool reads emission files concurrently, a collator groups
// loaded sequences into padded batches, each batch is decoded through
// package engine, and a writer pool saves results back — bounded by a
// backpressure queue when asynchronous saving is enabled.
//
// Run takes an ordered list of (input path, output path) jobs, a Codec
// (the opaque loader/writer abstraction — the on-disk format is kept
// external; package ioformat ships one concrete implementation), and a
// Config, and returns a Result reporting which outputs were written and
// which inputs failed to load or save.
//
// Key properties:
//   - Per-sequence failures never corrupt sibling outputs: a failed
//     load or save is recorded in Result and the pipeline continues
//     with the remaining sequences.
//   - The only ordering contract is the input→output path mapping;
//     batching and write order are not observable.
//   - Async saving uses a golang.org/x/sync/semaphore-bounded queue
//     (depth ≈100 by default): the producer blocks when the queue is
//     full, giving bounded memory under a slow or saturated disk.
//   - Logging via github.com/sirupsen/logrus: structured Warn on a
//     per-sequence failure, Info on batch completion.
package pipeline
