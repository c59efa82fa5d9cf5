package issuance

import (
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Execute runs one command as an atomic unit: every precondition is
// checked before its mutation, and any failure rolls back all of the
// command's writes. On success the writes land in the backend as a single
// batch.
func (i *Issuer) Execute(from ethcommon.Address, cmd Command) (*Response, error) {
	snapshot := i.state.Snapshot()
	resp, err := i.dispatch(from, cmd)
	if err == nil {
		err = i.state.Commit()
	}
	if err != nil {
		i.state.RevertToSnapshot(snapshot)
		failedCommandCounter.WithLabelValues(cmd.method()).Inc()
		i.logger.WithFields(logrus.Fields{
			"method": cmd.method(),
			"from":   from.String(),
			"err":    err,
		}).Warn("command rejected")
		return nil, err
	}
	executedCommandCounter.WithLabelValues(cmd.method()).Inc()
	return resp, nil
}

func (i *Issuer) dispatch(from ethcommon.Address, cmd Command) (*Response, error) {
	if _, ok := cmd.(*Initialize); !ok {
		initialized, err := i.config.initialized()
		if err != nil {
			return nil, err
		}
		if !initialized {
			return nil, ErrNotInitialized
		}
	}

	switch c := cmd.(type) {
	case *Initialize:
		return i.initialize(from, c.Subdenom)
	case *Mint:
		return i.mint(from, c.To, c.Amount)
	case *Burn:
		return i.burn(from, c.Amount)
	case *SetBlacklistStatus:
		return i.setBlacklistStatus(from, c.Address, c.Status)
	case *SetMinterAllowance:
		return i.setAllowance(from, RoleMinter, c.Address, c.Amount)
	case *SetBurnerAllowance:
		return i.setAllowance(from, RoleBurner, c.Address, c.Amount)
	case *SetFreezerPermission:
		return i.setPermission(from, RoleFreezer, c.Address, c.Status)
	case *SetBlacklisterPermission:
		return i.setPermission(from, RoleBlacklister, c.Address, c.Status)
	case *ChangeOwner:
		return i.changeOwner(from, c.NewOwner)
	case *ChangeAdmin:
		return i.changeAdmin(from, c.NewAdmin)
	case *Freeze:
		return i.freeze(from, c.Status)
	default:
		return nil, errors.Errorf("unsupported command %T", cmd)
	}
}
