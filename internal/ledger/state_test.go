package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stablemesh/issuer/internal/storagemgr"
)

func TestStateStoreOverlay(t *testing.T) {
	backend := storagemgr.NewMemory()
	state := New(backend)

	exist, _, err := state.GetState([]byte("k"))
	require.Nil(t, err)
	require.False(t, exist)

	state.SetState([]byte("k"), []byte("v1"))
	exist, v, err := state.GetState([]byte("k"))
	require.Nil(t, err)
	require.True(t, exist)
	require.Equal(t, []byte("v1"), v)

	// nothing hits the backend before commit
	raw, err := backend.Get([]byte("k"))
	require.Nil(t, err)
	require.Nil(t, raw)

	require.Nil(t, state.Commit())
	raw, err = backend.Get([]byte("k"))
	require.Nil(t, err)
	require.Equal(t, []byte("v1"), raw)
}

func TestStateStoreRevert(t *testing.T) {
	state := New(storagemgr.NewMemory())

	state.SetState([]byte("a"), []byte("1"))
	require.Nil(t, state.Commit())

	snapshot := state.Snapshot()
	state.SetState([]byte("a"), []byte("2"))
	state.SetState([]byte("b"), []byte("3"))
	state.RevertToSnapshot(snapshot)

	// committed value is read through again
	exist, v, err := state.GetState([]byte("a"))
	require.Nil(t, err)
	require.True(t, exist)
	require.Equal(t, []byte("1"), v)

	exist, _, err = state.GetState([]byte("b"))
	require.Nil(t, err)
	require.False(t, exist)
}

func TestStateStoreNestedRevert(t *testing.T) {
	state := New(storagemgr.NewMemory())

	state.SetState([]byte("a"), []byte("1"))
	mid := state.Snapshot()
	state.SetState([]byte("a"), []byte("2"))
	state.SetState([]byte("a"), []byte("3"))

	state.RevertToSnapshot(mid)
	_, v, err := state.GetState([]byte("a"))
	require.Nil(t, err)
	require.Equal(t, []byte("1"), v)

	state.RevertToSnapshot(0)
	exist, _, err := state.GetState([]byte("a"))
	require.Nil(t, err)
	require.False(t, exist)
}

func TestStateStoreRevertPanicsOnBadSnapshot(t *testing.T) {
	state := New(storagemgr.NewMemory())
	require.Panics(t, func() {
		state.RevertToSnapshot(1)
	})
}
