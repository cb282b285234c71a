package backend

import "errors"

// Sentinel errors for the backend package.
var (
	// ErrBackendUnavailable indicates a requested accelerator index has no
	// registered Backend. Fatal at call time.
	ErrBackendUnavailable = errors.New("backend: requested device has no registered backend")

	// ErrNilBackend is returned by Register when given a nil Backend.
	ErrNilBackend = errors.New("backend: cannot register a nil backend")
)
