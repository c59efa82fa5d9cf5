package issuance

import (
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/stablemesh/issuer/internal/ledger"
)

// Issuer is the authorization and allowance-accounting core of the managed
// asset. It owns the config singleton, the allowance ledgers, the role
// permission registries and the blacklist; the actual token balances live
// at the external backend, addressed through outbound instructions.
type Issuer struct {
	logger  logrus.FieldLogger
	state   *ledger.StateStore
	custody ethcommon.Address

	config      *configStore
	allowances  *allowanceLedger
	permissions *permissionRegistry
	blacklist   *blacklistRegistry
}

func New(state *ledger.StateStore, custody ethcommon.Address, logger logrus.FieldLogger) *Issuer {
	return &Issuer{
		logger:      logger,
		state:       state,
		custody:     custody,
		config:      newConfigStore(state),
		allowances:  newAllowanceLedger(state),
		permissions: newPermissionRegistry(state),
		blacklist:   newBlacklistRegistry(state),
	}
}

// IsFrozen answers the read-only frozen query.
func (i *Issuer) IsFrozen() (bool, error) {
	cfg, err := i.config.get()
	if err != nil {
		return false, err
	}
	return cfg.IsFrozen, nil
}

// Denom answers the read-only denom query.
func (i *Issuer) Denom() (string, error) {
	cfg, err := i.config.get()
	if err != nil {
		return "", err
	}
	return cfg.Denom, nil
}

// Config returns the current config singleton.
func (i *Issuer) Config() (Config, error) {
	return i.config.get()
}

// Allowance returns the current allowance for (role, addr), zero when no
// entry exists.
func (i *Issuer) Allowance(role AllowanceRole, addr ethcommon.Address) (*big.Int, error) {
	return i.allowances.allowance(role, addr)
}

// HasPermission reports the permission flag for (role, addr).
func (i *Issuer) HasPermission(role PermissionRole, addr ethcommon.Address) (bool, error) {
	return i.permissions.has(role, addr)
}

// BlacklistStatus reports the restricted-status for addr.
func (i *Issuer) BlacklistStatus(addr ethcommon.Address) (bool, error) {
	return i.blacklist.status(addr)
}

func parsePrincipal(s string) (ethcommon.Address, error) {
	if !ethcommon.IsHexAddress(s) {
		return ethcommon.Address{}, errors.Wrapf(ErrInvalidAddress, "%q", s)
	}
	return ethcommon.HexToAddress(s), nil
}

func (i *Issuer) requireOwner(from ethcommon.Address) error {
	cfg, err := i.config.get()
	if err != nil {
		return err
	}
	if from != cfg.Owner {
		return errors.Wrapf(ErrUnauthorized, "%s is not the owner", from)
	}
	return nil
}

func (i *Issuer) initialize(from ethcommon.Address, subdenom string) (*Response, error) {
	if subdenom == "" {
		return nil, errors.Wrap(ErrInvalidSubdenom, "empty")
	}
	if err := i.config.init(from, subdenom); err != nil {
		return nil, err
	}
	i.logger.WithFields(logrus.Fields{
		"owner": from.String(),
		"denom": subdenom,
	}).Info("issuer initialized")
	return newResponse("instantiate").
		addAttribute("owner", from.String()).
		addInstruction(&CreateDenom{Subdenom: subdenom}), nil
}

func (i *Issuer) mint(from ethcommon.Address, toAddr string, amount *big.Int) (*Response, error) {
	to, err := parsePrincipal(toAddr)
	if err != nil {
		return nil, err
	}
	if amount == nil || amount.Sign() <= 0 {
		return nil, ErrZeroAmount
	}
	remaining, err := i.allowances.consume(RoleMinter, from, amount)
	if err != nil {
		return nil, err
	}
	cfg, err := i.config.get()
	if err != nil {
		return nil, err
	}

	i.logger.WithFields(logrus.Fields{
		"minter":    from.String(),
		"to":        to.String(),
		"amount":    amount.String(),
		"remaining": remaining.String(),
	}).Debug("mint")

	coin := Coin{Denom: cfg.Denom, Amount: amount}
	return newResponse("mint_tokens").
		addAttribute("to_address", to.String()).
		addAttribute("amount", amount.String()).
		addInstruction(&MintCoins{Coin: coin, Recipient: i.custody.String()}).
		addInstruction(&SendCoins{Coin: coin, From: i.custody.String(), To: to.String()}), nil
}

func (i *Issuer) burn(from ethcommon.Address, amount *big.Int) (*Response, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, ErrZeroAmount
	}
	remaining, err := i.allowances.consume(RoleBurner, from, amount)
	if err != nil {
		return nil, err
	}
	cfg, err := i.config.get()
	if err != nil {
		return nil, err
	}

	i.logger.WithFields(logrus.Fields{
		"burner":    from.String(),
		"amount":    amount.String(),
		"remaining": remaining.String(),
	}).Debug("burn")

	// burns draw from the issuer's custody; the backend rejects the
	// instruction if custody holds less than amount
	return newResponse("execute_burn").
		addAttribute("amount", amount.String()).
		addInstruction(&BurnCoins{Coin: Coin{Denom: cfg.Denom, Amount: amount}}), nil
}

func (i *Issuer) changeOwner(from ethcommon.Address, newOwnerAddr string) (*Response, error) {
	if err := i.requireOwner(from); err != nil {
		return nil, err
	}
	newOwner, err := parsePrincipal(newOwnerAddr)
	if err != nil {
		return nil, err
	}
	if err := i.config.update(func(cfg *Config) {
		cfg.Owner = newOwner
	}); err != nil {
		return nil, err
	}
	return newResponse("change_contract_owner").
		addAttribute("new_owner", newOwner.String()), nil
}

func (i *Issuer) changeAdmin(from ethcommon.Address, newAdminAddr string) (*Response, error) {
	if err := i.requireOwner(from); err != nil {
		return nil, err
	}
	newAdmin, err := parsePrincipal(newAdminAddr)
	if err != nil {
		return nil, err
	}
	cfg, err := i.config.get()
	if err != nil {
		return nil, err
	}
	// administrative control moves at the backend only; local config keeps
	// its owner
	return newResponse("change_tokenfactory_admin").
		addAttribute("new_admin", newAdmin.String()).
		addInstruction(&ChangeDenomAdmin{Denom: cfg.Denom, NewAdmin: newAdmin.String()}), nil
}

func (i *Issuer) setAllowance(from ethcommon.Address, role AllowanceRole, targetAddr string, amount *big.Int) (*Response, error) {
	if err := i.requireOwner(from); err != nil {
		return nil, err
	}
	target, err := parsePrincipal(targetAddr)
	if err != nil {
		return nil, err
	}
	if err := i.allowances.grant(role, target, amount); err != nil {
		return nil, err
	}
	method := "set_minter"
	if role == RoleBurner {
		method = "set_burner"
	}
	return newResponse(method).
		addAttribute(role.String(), target.String()).
		addAttribute("allowance", amount.String()), nil
}

func (i *Issuer) setPermission(from ethcommon.Address, role PermissionRole, targetAddr string, status bool) (*Response, error) {
	if err := i.requireOwner(from); err != nil {
		return nil, err
	}
	target, err := parsePrincipal(targetAddr)
	if err != nil {
		return nil, err
	}
	if err := i.permissions.set(role, target, status); err != nil {
		return nil, err
	}
	method := "set_freezer"
	if role == RoleBlacklister {
		method = "set_blacklister"
	}
	return newResponse(method).
		addAttribute(role.String(), target.String()).
		addAttribute("status", boolString(status)), nil
}

func (i *Issuer) setBlacklistStatus(from ethcommon.Address, targetAddr string, status bool) (*Response, error) {
	permitted, err := i.permissions.has(RoleBlacklister, from)
	if err != nil {
		return nil, err
	}
	if !permitted {
		return nil, errors.Wrapf(ErrUnauthorized, "%s is not a blacklister", from)
	}
	target, err := parsePrincipal(targetAddr)
	if err != nil {
		return nil, err
	}
	if err := i.blacklist.setStatus(target, status); err != nil {
		return nil, err
	}
	return newResponse("blacklist").
		addAttribute("address", target.String()).
		addAttribute("status", boolString(status)), nil
}

func (i *Issuer) freeze(from ethcommon.Address, status bool) (*Response, error) {
	permitted, err := i.permissions.has(RoleFreezer, from)
	if err != nil {
		return nil, err
	}
	if !permitted {
		return nil, errors.Wrapf(ErrUnauthorized, "%s is not a freezer", from)
	}
	if err := i.config.update(func(cfg *Config) {
		cfg.IsFrozen = status
	}); err != nil {
		return nil, err
	}
	i.logger.WithField("status", status).Info("freeze state changed")
	return newResponse("execute_freeze").
		addAttribute("status", boolString(status)), nil
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
