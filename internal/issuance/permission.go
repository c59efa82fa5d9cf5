package issuance

import (
	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/stablemesh/issuer/internal/ledger"
)

const (
	freezerPermissionsStorageKey     = "freezerPermissions"
	blacklisterPermissionsStorageKey = "blacklisterPermissions"
)

// permissionRegistry holds the freezer and blacklister capability flags.
// An absent entry reads as false.
type permissionRegistry struct {
	freezers     *StateMap[ethcommon.Address, bool]
	blacklisters *StateMap[ethcommon.Address, bool]
}

func newPermissionRegistry(store *ledger.StateStore) *permissionRegistry {
	addrKey := func(key ethcommon.Address) string {
		return key.String()
	}
	return &permissionRegistry{
		freezers:     NewStateMap[ethcommon.Address, bool](store, freezerPermissionsStorageKey, addrKey),
		blacklisters: NewStateMap[ethcommon.Address, bool](store, blacklisterPermissionsStorageKey, addrKey),
	}
}

func (r *permissionRegistry) roleMap(role PermissionRole) *StateMap[ethcommon.Address, bool] {
	if role == RoleBlacklister {
		return r.blacklisters
	}
	return r.freezers
}

// set overwrites the stored flag, with no idempotence guard.
func (r *permissionRegistry) set(role PermissionRole, target ethcommon.Address, status bool) error {
	return r.roleMap(role).Put(target, status)
}

// has reports whether the principal holds the permission; an absent entry
// or an explicit false both deny.
func (r *permissionRegistry) has(role PermissionRole, addr ethcommon.Address) (bool, error) {
	exist, v, err := r.roleMap(role).Get(addr)
	if err != nil {
		return false, err
	}
	return exist && v, nil
}
