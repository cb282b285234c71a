package backend_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nyxgraph/viterbi/backend"
	"github.com/nyxgraph/viterbi/kernel"
)

type stubBackend struct{ calls int }

func (s *stubBackend) AllocateWorkspace(extents []kernel.Extent) *backend.Workspace {
	return backend.NewCPU(0).AllocateWorkspace(extents)
}

func (s *stubBackend) Forward(ctx context.Context, batch backend.Batch, ws *backend.Workspace) error {
	s.calls++
	return backend.NewCPU(0).Forward(ctx, batch, ws)
}

func TestRegistry_resolvesCPUByDefault(t *testing.T) {
	r := backend.NewRegistry()

	b, err := r.Resolve(backend.DeviceCPU)
	require.NoError(t, err)
	require.NotNil(t, b)
}

func TestRegistry_unregisteredDeviceIsUnavailable(t *testing.T) {
	r := backend.NewRegistry()

	_, err := r.Resolve(backend.Device(7))
	require.ErrorIs(t, err, backend.ErrBackendUnavailable)
}

func TestRegistry_registerAndResolve(t *testing.T) {
	r := backend.NewRegistry()
	stub := &stubBackend{}

	require.NoError(t, r.Register(backend.Device(1), stub))

	got, err := r.Resolve(backend.Device(1))
	require.NoError(t, err)
	require.Same(t, stub, got)
}

func TestRegistry_registerNilBackend(t *testing.T) {
	r := backend.NewRegistry()
	require.ErrorIs(t, r.Register(backend.Device(1), nil), backend.ErrNilBackend)
}
