package issuance

import (
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/stablemesh/issuer/internal/ledger"
)

const (
	minterAllowancesStorageKey = "minterAllowances"
	burnerAllowancesStorageKey = "burnerAllowances"
)

// allowanceLedger holds the two independent principal-to-amount mappings.
// An absent entry reads as zero; the only decreasing path is consume.
type allowanceLedger struct {
	minters *StateMap[ethcommon.Address, *big.Int]
	burners *StateMap[ethcommon.Address, *big.Int]
}

func newAllowanceLedger(store *ledger.StateStore) *allowanceLedger {
	addrKey := func(key ethcommon.Address) string {
		return key.String()
	}
	return &allowanceLedger{
		minters: NewStateMap[ethcommon.Address, *big.Int](store, minterAllowancesStorageKey, addrKey),
		burners: NewStateMap[ethcommon.Address, *big.Int](store, burnerAllowancesStorageKey, addrKey),
	}
}

func (l *allowanceLedger) roleMap(role AllowanceRole) *StateMap[ethcommon.Address, *big.Int] {
	if role == RoleBurner {
		return l.burners
	}
	return l.minters
}

// allowance reads the stored amount, defaulting to zero for an unknown
// principal.
func (l *allowanceLedger) allowance(role AllowanceRole, addr ethcommon.Address) (*big.Int, error) {
	exist, v, err := l.roleMap(role).Get(addr)
	if err != nil {
		return nil, err
	}
	if !exist || v == nil {
		return big.NewInt(0), nil
	}
	return v, nil
}

// grant overwrites the stored allowance. Setting the same value again
// succeeds; setting zero is the deletion-equivalent.
func (l *allowanceLedger) grant(role AllowanceRole, target ethcommon.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return ErrInvalidAmount
	}
	return l.roleMap(role).Put(target, amount)
}

// consume is the atomic check-and-decrement: it fails with
// ErrInsufficientAllowance and writes nothing when the result would go
// negative, otherwise it stores and returns the new allowance.
func (l *allowanceLedger) consume(role AllowanceRole, actor ethcommon.Address, amount *big.Int) (*big.Int, error) {
	current, err := l.allowance(role, actor)
	if err != nil {
		return nil, err
	}
	remaining := new(big.Int).Sub(current, amount)
	if remaining.Sign() < 0 {
		return nil, ErrInsufficientAllowance
	}
	if err := l.roleMap(role).Put(actor, remaining); err != nil {
		return nil, err
	}
	return remaining, nil
}
