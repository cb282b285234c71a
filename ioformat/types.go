package ioformat

// magic identifies the little-endian binary layout this package reads
// and writes.
var magic = [4]byte{'V', 'T', 'B', '1'}

// Header is the fixed-size preamble of every file this package
// produces: enough to recover a (Frames, States), (States, States), or
// (States,) shape without external metadata.
type Header struct {
	Magic [4]byte
	Rank  uint8
	Dims  [2]uint32
}

func newHeader(rank uint8, dims [2]uint32) Header {
	return Header{Magic: magic, Rank: rank, Dims: dims}
}

func (h Header) validate() error {
	if h.Magic != magic {
		return ErrBadMagic
	}
	if h.Rank != 1 && h.Rank != 2 {
		return ErrBadRank
	}

	return nil
}

// count returns the number of payload elements h's dimensions describe.
func (h Header) count() int {
	if h.Rank == 1 {
		return int(h.Dims[0])
	}

	return int(h.Dims[0]) * int(h.Dims[1])
}

// Codec is the concrete Loader/Saver pair this package implements,
// satisfying pipeline.Codec. The zero value is ready to use.
type Codec struct{}
