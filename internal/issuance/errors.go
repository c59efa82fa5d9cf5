package issuance

import "github.com/pkg/errors"

var (
	// ErrUnauthorized rejects a caller lacking ownership or the required
	// role permission.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrZeroAmount rejects mint/burn of zero coins.
	ErrZeroAmount = errors.New("amount was zero, must be positive")

	// ErrInsufficientAllowance rejects a mint/burn that would drive the
	// caller's allowance negative.
	ErrInsufficientAllowance = errors.New("insufficient allowance")

	// ErrInvalidAddress rejects a malformed principal.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidAmount rejects a nil or negative allowance grant.
	ErrInvalidAmount = errors.New("allowance must be non-negative")

	// ErrInvalidSubdenom rejects initialization with an empty subdenom.
	ErrInvalidSubdenom = errors.New("invalid subdenom")

	// ErrFrozen rejects every transfer while the global freeze is set.
	ErrFrozen = errors.New("transfers of token are frozen")

	// ErrBlacklisted rejects a transfer from a restricted sender.
	ErrBlacklisted = errors.New("sender address is blacklisted")

	// ErrAlreadyInitialized rejects a second Initialize.
	ErrAlreadyInitialized = errors.New("issuer already initialized")

	// ErrNotInitialized rejects any command before Initialize.
	ErrNotInitialized = errors.New("issuer not initialized")
)
