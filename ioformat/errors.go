package ioformat

import "errors"

var (
	// ErrBadMagic is returned when a file's header does not start with
	// the expected magic bytes.
	ErrBadMagic = errors.New("ioformat: bad magic bytes")
	// ErrBadRank is returned when a file's header declares a rank other
	// than 1 or 2.
	ErrBadRank = errors.New("ioformat: rank must be 1 or 2")
	// ErrRankMismatch is returned when a Load method is called against a
	// file whose declared rank does not match what that method expects.
	ErrRankMismatch = errors.New("ioformat: unexpected rank for this load")
)
