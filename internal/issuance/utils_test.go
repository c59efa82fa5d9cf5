package issuance

import (
	"math/big"
	"testing"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/stablemesh/issuer/internal/ledger"
	"github.com/stablemesh/issuer/internal/storagemgr"
	"github.com/stablemesh/issuer/pkg/loggers"
	"github.com/stablemesh/issuer/pkg/repo"
)

const (
	owner       = "0xEd17543171C1459714cdC6519b58fFcC29A3C3c9"
	minterA     = "0xc7F999b83Af6DF9e67d0a37Ee7e900bF38b3D013"
	userB       = "0x79a1215469FaB6f9c63c1816b45183AD3624bE34"
	burnerC     = "0x97c8B516D19edBf575D72a172Af7F418BE498C37"
	freezerF    = "0xc0Ff2e0b3189132D815b8eb325bE17285AC898f8"
	blacklistX  = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	restrictedR = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
	stranger    = "0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC"
)

func addr(s string) ethcommon.Address {
	return ethcommon.HexToAddress(s)
}

func amt(v int64) *big.Int {
	return big.NewInt(v)
}

func newTestIssuer(t *testing.T) *Issuer {
	t.Helper()
	state := ledger.New(storagemgr.NewMemory())
	return New(state, addr(repo.DefaultCustodyAddr), loggers.Logger(loggers.Issuance))
}

func newInitializedIssuer(t *testing.T) *Issuer {
	t.Helper()
	issuer := newTestIssuer(t)
	_, err := issuer.Execute(addr(owner), &Initialize{Subdenom: "uusdc"})
	require.Nil(t, err)
	return issuer
}

func requireAllowance(t *testing.T, issuer *Issuer, role AllowanceRole, principal string, expected int64) {
	t.Helper()
	allowance, err := issuer.Allowance(role, addr(principal))
	require.Nil(t, err)
	require.Equal(t, amt(expected).String(), allowance.String())
}
