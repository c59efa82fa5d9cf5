package issuance

import (
	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/stablemesh/issuer/internal/ledger"
)

const blacklistStorageKey = "blacklistedAddresses"

// blacklistRegistry holds the restricted-status flags consulted by the
// pre-transfer guard. An absent entry reads as not restricted.
type blacklistRegistry struct {
	entries *StateMap[ethcommon.Address, bool]
}

func newBlacklistRegistry(store *ledger.StateStore) *blacklistRegistry {
	return &blacklistRegistry{
		entries: NewStateMap[ethcommon.Address, bool](store, blacklistStorageKey, func(key ethcommon.Address) string {
			return key.String()
		}),
	}
}

// setStatus overwrites the stored flag, with no idempotence guard.
func (r *blacklistRegistry) setStatus(target ethcommon.Address, status bool) error {
	return r.entries.Put(target, status)
}

func (r *blacklistRegistry) status(addr ethcommon.Address) (bool, error) {
	exist, v, err := r.entries.Get(addr)
	if err != nil {
		return false, err
	}
	return exist && v, nil
}
