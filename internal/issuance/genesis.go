package issuance

import (
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/stablemesh/issuer/pkg/repo"
)

// GenesisInit initializes the config singleton and applies the initial
// grants from the genesis config, with the configured owner as the
// caller. All of it commits as one unit; any failure leaves the store
// untouched.
func (i *Issuer) GenesisInit(genesis *repo.GenesisConfig) error {
	owner, err := parsePrincipal(genesis.Owner)
	if err != nil {
		return errors.Wrap(err, "genesis owner")
	}

	snapshot := i.state.Snapshot()
	if err := i.applyGenesis(owner, genesis); err != nil {
		i.state.RevertToSnapshot(snapshot)
		return err
	}
	return i.state.Commit()
}

func (i *Issuer) applyGenesis(owner ethcommon.Address, genesis *repo.GenesisConfig) error {
	if _, err := i.initialize(owner, genesis.Subdenom); err != nil {
		return err
	}

	for _, grant := range genesis.Minters {
		if err := i.applyGenesisGrant(owner, RoleMinter, grant); err != nil {
			return err
		}
	}
	for _, grant := range genesis.Burners {
		if err := i.applyGenesisGrant(owner, RoleBurner, grant); err != nil {
			return err
		}
	}

	for _, addr := range lo.Uniq(genesis.Freezers) {
		if _, err := i.setPermission(owner, RoleFreezer, addr, true); err != nil {
			return err
		}
	}
	for _, addr := range lo.Uniq(genesis.Blacklisters) {
		if _, err := i.setPermission(owner, RoleBlacklister, addr, true); err != nil {
			return err
		}
	}
	return nil
}

func (i *Issuer) applyGenesisGrant(owner ethcommon.Address, role AllowanceRole, grant *repo.AllowanceGrant) error {
	amount := big.NewInt(0)
	if grant.Allowance != "" {
		var ok bool
		amount, ok = new(big.Int).SetString(grant.Allowance, 10)
		if !ok {
			return errors.Errorf("invalid genesis %s allowance %q for %s", role, grant.Allowance, grant.Address)
		}
	}
	_, err := i.setAllowance(owner, role, grant.Address, amount)
	return err
}
