package domain

import "github.com/pkg/errors"

// Typed error kinds surfaced by the engine. Providers and the executor wrap
// these sentinels so callers can classify failures with errors.Is regardless
// of which backend produced them.
var (
	// ErrUnknownSymbol is returned when a trading pair is not in the known set.
	ErrUnknownSymbol = errors.New("unknown symbol")
	// ErrDataUnavailable is a transient backend failure (network, auth, empty response).
	ErrDataUnavailable = errors.New("market data unavailable")
	// ErrInvalidOrder is returned for orders with a non-positive quantity or bad side.
	ErrInvalidOrder = errors.New("invalid order")
	// ErrInsufficientBalance is returned when the debited asset cannot cover the order.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrInvalidRisk is returned for sizing requests with bad inputs.
	ErrInvalidRisk = errors.New("invalid risk parameters")
	// ErrUnsupportedOperation is returned when the current mode lacks a capability.
	ErrUnsupportedOperation = errors.New("operation not supported in current mode")
	// ErrCredentialMissing is returned when live mode is selected without API credentials.
	ErrCredentialMissing = errors.New("live mode requires API credentials")
)
