// Package ioformat implements the one concrete on-disk codec shipped
// with this module: a self-describing little-endian binary layout for
// float32 matrices/vectors and int32 index paths, so the public API's
// single-file and many-files entry points are runnable without a
// caller-supplied codec.
//
// Format:
//
//	Header  - 4-byte magic "VTB1", a rank byte (1 or 2), and two uint32
//	          dimensions (the second unused when rank is 1).
//	Payload - Dims[0]*Dims[1] (rank 2) or Dims[0] (rank 1) elements,
//	          little-endian float32 or int32 depending on which Load/Save
//	          method is called.
//
// This is the only component in the module built on the standard
// library alone (encoding/binary): the on-disk format is explicitly kept
// external and swappable by package pipeline, and wiring a heavyweight
// ecosystem serialization format here (Arrow, FlatBuffers, protobuf)
// would turn an optional seam into a hard dependency for every caller
// that never needed one. Callers who want Arrow/FlatBuffers/protobuf
// wire their own type satisfying pipeline.Codec instead.
package ioformat
