package issuance

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFreezeGate(t *testing.T) {
	issuer := newInitializedIssuer(t)

	t.Run("freeze without permission rejected", func(t *testing.T) {
		_, err := issuer.Execute(addr(freezerF), &Freeze{Status: true})
		require.ErrorIs(t, err, ErrUnauthorized)

		frozen, err := issuer.IsFrozen()
		require.Nil(t, err)
		require.False(t, frozen)
	})

	_, err := issuer.Execute(addr(owner), &SetFreezerPermission{Address: freezerF, Status: true})
	require.Nil(t, err)

	t.Run("freeze blocks every transfer", func(t *testing.T) {
		_, err := issuer.Execute(addr(freezerF), &Freeze{Status: true})
		require.Nil(t, err)

		frozen, err := issuer.IsFrozen()
		require.Nil(t, err)
		require.True(t, frozen)

		coins := []Coin{{Denom: "uusdc", Amount: amt(5)}}
		require.ErrorIs(t, issuer.BeforeTransfer(addr(userB), addr(stranger), coins), ErrFrozen)
		require.ErrorIs(t, issuer.BeforeTransfer(addr(owner), addr(userB), coins), ErrFrozen)
	})

	t.Run("unfreeze restores transfers", func(t *testing.T) {
		_, err := issuer.Execute(addr(freezerF), &Freeze{Status: false})
		require.Nil(t, err)
		require.Nil(t, issuer.BeforeTransfer(addr(userB), addr(stranger), nil))
	})

	t.Run("revoked freezer loses the gate", func(t *testing.T) {
		_, err := issuer.Execute(addr(owner), &SetFreezerPermission{Address: freezerF, Status: false})
		require.Nil(t, err)
		_, err = issuer.Execute(addr(freezerF), &Freeze{Status: true})
		require.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestBlacklistGate(t *testing.T) {
	issuer := newInitializedIssuer(t)

	t.Run("blacklisting without permission rejected", func(t *testing.T) {
		_, err := issuer.Execute(addr(blacklistX), &SetBlacklistStatus{Address: restrictedR, Status: true})
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	_, err := issuer.Execute(addr(owner), &SetBlacklisterPermission{Address: blacklistX, Status: true})
	require.Nil(t, err)

	t.Run("explicit false permission still denies", func(t *testing.T) {
		_, err := issuer.Execute(addr(owner), &SetBlacklisterPermission{Address: stranger, Status: false})
		require.Nil(t, err)
		_, err = issuer.Execute(addr(stranger), &SetBlacklistStatus{Address: restrictedR, Status: true})
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("restricted sender is rejected", func(t *testing.T) {
		_, err := issuer.Execute(addr(blacklistX), &SetBlacklistStatus{Address: restrictedR, Status: true})
		require.Nil(t, err)

		status, err := issuer.BlacklistStatus(addr(restrictedR))
		require.Nil(t, err)
		require.True(t, status)

		require.ErrorIs(t, issuer.BeforeTransfer(addr(restrictedR), addr(userB), nil), ErrBlacklisted)
	})

	t.Run("restricted recipient is the backend's business", func(t *testing.T) {
		require.Nil(t, issuer.BeforeTransfer(addr(userB), addr(restrictedR), nil))
	})

	t.Run("blacklister may restrict itself", func(t *testing.T) {
		_, err := issuer.Execute(addr(blacklistX), &SetBlacklistStatus{Address: blacklistX, Status: true})
		require.Nil(t, err)
		require.ErrorIs(t, issuer.BeforeTransfer(addr(blacklistX), addr(userB), nil), ErrBlacklisted)
	})

	t.Run("freeze takes precedence over blacklist", func(t *testing.T) {
		_, err := issuer.Execute(addr(owner), &SetFreezerPermission{Address: freezerF, Status: true})
		require.Nil(t, err)
		_, err = issuer.Execute(addr(freezerF), &Freeze{Status: true})
		require.Nil(t, err)
		require.ErrorIs(t, issuer.BeforeTransfer(addr(restrictedR), addr(userB), nil), ErrFrozen)
	})

	t.Run("unrestricting restores transfers", func(t *testing.T) {
		_, err := issuer.Execute(addr(freezerF), &Freeze{Status: false})
		require.Nil(t, err)
		_, err = issuer.Execute(addr(blacklistX), &SetBlacklistStatus{Address: restrictedR, Status: false})
		require.Nil(t, err)
		require.Nil(t, issuer.BeforeTransfer(addr(restrictedR), addr(userB), nil))
	})
}

func TestGuardNotInitialized(t *testing.T) {
	issuer := newTestIssuer(t)
	require.ErrorIs(t, issuer.BeforeTransfer(addr(userB), addr(stranger), nil), ErrNotInitialized)
}
