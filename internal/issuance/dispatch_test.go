package issuance

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/stablemesh/issuer/internal/ledger"
	"github.com/stablemesh/issuer/internal/storagemgr"
	"github.com/stablemesh/issuer/pkg/loggers"
	"github.com/stablemesh/issuer/pkg/repo"
)

func TestNotInitializedGate(t *testing.T) {
	issuer := newTestIssuer(t)

	commands := []Command{
		&Mint{To: userB, Amount: amt(1)},
		&Burn{Amount: amt(1)},
		&SetMinterAllowance{Address: minterA, Amount: amt(1)},
		&SetBlacklistStatus{Address: restrictedR, Status: true},
		&ChangeOwner{NewOwner: userB},
		&Freeze{Status: true},
	}
	for _, cmd := range commands {
		_, err := issuer.Execute(addr(owner), cmd)
		require.ErrorIs(t, err, ErrNotInitialized, "method %s", cmd.method())
	}
}

type bogusCommand struct{}

func (*bogusCommand) method() string { return "bogus" }

func TestUnsupportedCommand(t *testing.T) {
	issuer := newInitializedIssuer(t)
	_, err := issuer.Execute(addr(owner), &bogusCommand{})
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "unsupported command")
}

func TestFailedCommandLeavesNoOverlay(t *testing.T) {
	issuer := newInitializedIssuer(t)

	// a failing command must roll its journal back completely
	_, err := issuer.Execute(addr(stranger), &SetMinterAllowance{Address: minterA, Amount: amt(10)})
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Equal(t, 0, issuer.state.Snapshot())

	_, err = issuer.Execute(addr(minterA), &Mint{To: userB, Amount: amt(10)})
	require.ErrorIs(t, err, ErrInsufficientAllowance)
	require.Equal(t, 0, issuer.state.Snapshot())
}

// faultyStorage fails on demand so commands can observe backend errors.
type faultyStorage struct {
	storagemgr.Storage
	failGet    bool
	failCommit bool
}

func (s *faultyStorage) Get(key []byte) ([]byte, error) {
	if s.failGet {
		return nil, errors.New("disk read failed")
	}
	return s.Storage.Get(key)
}

func (s *faultyStorage) NewBatch() storagemgr.Batch {
	batch := s.Storage.NewBatch()
	if s.failCommit {
		return &faultyBatch{Batch: batch}
	}
	return batch
}

type faultyBatch struct {
	storagemgr.Batch
}

func (b *faultyBatch) Commit() error {
	return errors.New("disk write failed")
}

func TestStorageFailureAbortsCommand(t *testing.T) {
	t.Run("read failure mid-dispatch", func(t *testing.T) {
		backend := &faultyStorage{Storage: storagemgr.NewMemory()}
		issuer := New(ledger.New(backend), addr(repo.DefaultCustodyAddr), loggers.Logger(loggers.Issuance))

		_, err := issuer.Execute(addr(owner), &Initialize{Subdenom: "uusdc"})
		require.Nil(t, err)

		backend.failGet = true
		_, err = issuer.Execute(addr(owner), &SetMinterAllowance{Address: minterA, Amount: amt(10)})
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "state read")
		require.Contains(t, err.Error(), "disk read failed")
		require.Equal(t, 0, issuer.state.Snapshot())

		// the command never reached the store
		backend.failGet = false
		requireAllowance(t, issuer, RoleMinter, minterA, 0)
	})

	t.Run("commit failure rolls the overlay back", func(t *testing.T) {
		backend := &faultyStorage{Storage: storagemgr.NewMemory(), failCommit: true}
		issuer := New(ledger.New(backend), addr(repo.DefaultCustodyAddr), loggers.Logger(loggers.Issuance))

		_, err := issuer.Execute(addr(owner), &Initialize{Subdenom: "uusdc"})
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "state commit")
		require.Contains(t, err.Error(), "disk write failed")
		require.Equal(t, 0, issuer.state.Snapshot())

		// nothing landed: the issuer still reads as uninitialized
		_, err = issuer.Denom()
		require.ErrorIs(t, err, ErrNotInitialized)
	})
}

func TestResponseAttributes(t *testing.T) {
	issuer := newInitializedIssuer(t)

	resp, err := issuer.Execute(addr(owner), &SetFreezerPermission{Address: freezerF, Status: true})
	require.Nil(t, err)
	require.Equal(t, []Attribute{
		{Key: "method", Value: "set_freezer"},
		{Key: "freezer", Value: addr(freezerF).String()},
		{Key: "status", Value: "true"},
	}, resp.Attributes)

	resp, err = issuer.Execute(addr(owner), &SetBurnerAllowance{Address: burnerC, Amount: amt(7)})
	require.Nil(t, err)
	require.Equal(t, []Attribute{
		{Key: "method", Value: "set_burner"},
		{Key: "burner", Value: addr(burnerC).String()},
		{Key: "allowance", Value: "7"},
	}, resp.Attributes)
}
