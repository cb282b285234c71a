package ioformat

import (
	"encoding/binary"
	"fmt"
	"os"
)

// LoadEmission reads a rank-2 (frames, states) float32 buffer.
func (Codec) LoadEmission(path string) (data []float32, frames, states int, err error) {
	data, dims, err := loadFloats(path, 2)
	if err != nil {
		return nil, 0, 0, err
	}

	return data, int(dims[0]), int(dims[1]), nil
}

// LoadMatrix reads a rank-2 float32 buffer of arbitrary shape — used for
// a shared transition matrix.
func (Codec) LoadMatrix(path string) (data []float32, rows, cols int, err error) {
	data, dims, err := loadFloats(path, 2)
	if err != nil {
		return nil, 0, 0, err
	}

	return data, int(dims[0]), int(dims[1]), nil
}

// LoadVector reads a rank-1 float32 buffer — used for an initial state
// distribution, stored self-describing rather than padded into a
// single-row matrix.
func (Codec) LoadVector(path string) (data []float32, n int, err error) {
	data, dims, err := loadFloats(path, 1)
	if err != nil {
		return nil, 0, err
	}

	return data, int(dims[0]), nil
}

// SaveIndices writes a rank-1 int32 state-index path.
func (Codec) SaveIndices(path string, indices []int32) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	h := newHeader(1, [2]uint32{uint32(len(indices)), 0})
	if err := binary.Write(f, binary.LittleEndian, h); err != nil {
		return err
	}

	return binary.Write(f, binary.LittleEndian, indices)
}

// SaveMatrix writes a rank-2 float32 buffer. Not required by
// pipeline.Codec, but useful for producing fixtures this package can
// then load back.
func (Codec) SaveMatrix(path string, data []float32, rows, cols int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	h := newHeader(2, [2]uint32{uint32(rows), uint32(cols)})
	if err := binary.Write(f, binary.LittleEndian, h); err != nil {
		return err
	}

	return binary.Write(f, binary.LittleEndian, data)
}

// SaveVector writes a rank-1 float32 buffer. Not required by
// pipeline.Codec, but useful for producing initial-distribution fixtures
// this package can then load back via LoadVector.
func (Codec) SaveVector(path string, data []float32) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	h := newHeader(1, [2]uint32{uint32(len(data)), 0})
	if err := binary.Write(f, binary.LittleEndian, h); err != nil {
		return err
	}

	return binary.Write(f, binary.LittleEndian, data)
}

// loadFloats opens path, validates its header against wantRank, and
// reads its float32 payload.
func loadFloats(path string, wantRank uint8) ([]float32, [2]uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, [2]uint32{}, err
	}
	defer f.Close()

	var h Header
	if err := binary.Read(f, binary.LittleEndian, &h); err != nil {
		return nil, [2]uint32{}, fmt.Errorf("ioformat: read header: %w", err)
	}
	if err := h.validate(); err != nil {
		return nil, [2]uint32{}, err
	}
	if h.Rank != wantRank {
		return nil, [2]uint32{}, ErrRankMismatch
	}

	data := make([]float32, h.count())
	if err := binary.Read(f, binary.LittleEndian, data); err != nil {
		return nil, [2]uint32{}, fmt.Errorf("ioformat: read payload: %w", err)
	}

	return data, h.Dims, nil
}
