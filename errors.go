package viterbi

import "errors"

// ErrPathCountMismatch is returned by DecodeFiles when inPaths and
// outPaths have different lengths.
var ErrPathCountMismatch = errors.New("viterbi: inPaths and outPaths must have the same length")
