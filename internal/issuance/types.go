package issuance

import (
	"math/big"
)

// AllowanceRole selects one of the two numeric allowance ledgers.
type AllowanceRole uint8

const (
	RoleMinter AllowanceRole = iota
	RoleBurner
)

func (r AllowanceRole) String() string {
	switch r {
	case RoleMinter:
		return "minter"
	case RoleBurner:
		return "burner"
	default:
		return "unknown"
	}
}

// PermissionRole selects one of the two boolean permission registries.
type PermissionRole uint8

const (
	RoleFreezer PermissionRole = iota
	RoleBlacklister
)

func (r PermissionRole) String() string {
	switch r {
	case RoleFreezer:
		return "freezer"
	case RoleBlacklister:
		return "blacklister"
	default:
		return "unknown"
	}
}

// Coin is an amount of a denomination at the token backend.
type Coin struct {
	Denom  string
	Amount *big.Int
}

// Command is the closed set of state-mutating operations. The dispatcher
// switches over it exhaustively, so adding a command is a compile-checked
// change.
type Command interface {
	// method names the operation in response attributes, logs and metrics
	method() string
}

type Initialize struct {
	Subdenom string
}

type Mint struct {
	To     string
	Amount *big.Int
}

type Burn struct {
	Amount *big.Int
}

type SetBlacklistStatus struct {
	Address string
	Status  bool
}

type SetMinterAllowance struct {
	Address string
	Amount  *big.Int
}

type SetBurnerAllowance struct {
	Address string
	Amount  *big.Int
}

type SetFreezerPermission struct {
	Address string
	Status  bool
}

type SetBlacklisterPermission struct {
	Address string
	Status  bool
}

type ChangeOwner struct {
	NewOwner string
}

type ChangeAdmin struct {
	NewAdmin string
}

type Freeze struct {
	Status bool
}

func (*Initialize) method() string               { return "instantiate" }
func (*Mint) method() string                     { return "mint_tokens" }
func (*Burn) method() string                     { return "execute_burn" }
func (*SetBlacklistStatus) method() string       { return "blacklist" }
func (*SetMinterAllowance) method() string       { return "set_minter" }
func (*SetBurnerAllowance) method() string       { return "set_burner" }
func (*SetFreezerPermission) method() string     { return "set_freezer" }
func (*SetBlacklisterPermission) method() string { return "set_blacklister" }
func (*ChangeOwner) method() string              { return "change_contract_owner" }
func (*ChangeAdmin) method() string              { return "change_tokenfactory_admin" }
func (*Freeze) method() string                   { return "execute_freeze" }

// Instruction is an outbound effect for the external token backend,
// returned as data rather than invoked directly.
type Instruction interface {
	isInstruction()
}

// CreateDenom asks the backend to create the managed denomination.
type CreateDenom struct {
	Subdenom string
}

// MintCoins mints into the issuer's own custody account.
type MintCoins struct {
	Coin      Coin
	Recipient string
}

// SendCoins moves coins out of custody to the designated recipient.
type SendCoins struct {
	Coin Coin
	From string
	To   string
}

// BurnCoins burns from the issuer's own custody account. The backend
// rejects it if custody does not hold enough.
type BurnCoins struct {
	Coin Coin
}

// ChangeDenomAdmin reassigns administrative control of the denom at the
// backend.
type ChangeDenomAdmin struct {
	Denom    string
	NewAdmin string
}

func (*CreateDenom) isInstruction()      {}
func (*MintCoins) isInstruction()        {}
func (*SendCoins) isInstruction()        {}
func (*BurnCoins) isInstruction()        {}
func (*ChangeDenomAdmin) isInstruction() {}

// Attribute is a human-readable key-value pair describing a successful
// command.
type Attribute struct {
	Key   string
	Value string
}

// Response carries the attributes and outbound instructions of a
// successful command.
type Response struct {
	Attributes   []Attribute
	Instructions []Instruction
}

func newResponse(method string) *Response {
	return &Response{
		Attributes: []Attribute{{Key: "method", Value: method}},
	}
}

func (r *Response) addAttribute(key, value string) *Response {
	r.Attributes = append(r.Attributes, Attribute{Key: key, Value: value})
	return r
}

func (r *Response) addInstruction(instr Instruction) *Response {
	r.Instructions = append(r.Instructions, instr)
	return r
}
