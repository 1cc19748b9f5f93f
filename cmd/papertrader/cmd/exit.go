package cmd

import (
	"github.com/pkg/errors"

	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/domain"
)

// Exit codes by failure kind, so scripts can branch on the category.
const (
	exitOK            = 0
	exitFailure       = 1
	exitValidation    = 2
	exitConnectivity  = 3
	exitUnknownSymbol = 4
	exitInsufficient  = 5
	exitUnsupported   = 6
	exitCredentials   = 7
)

// ExitCode maps a command error to its process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, domain.ErrInvalidOrder), errors.Is(err, domain.ErrInvalidRisk):
		return exitValidation
	case errors.Is(err, domain.ErrDataUnavailable):
		return exitConnectivity
	case errors.Is(err, domain.ErrUnknownSymbol):
		return exitUnknownSymbol
	case errors.Is(err, domain.ErrInsufficientBalance):
		return exitInsufficient
	case errors.Is(err, domain.ErrUnsupportedOperation):
		return exitUnsupported
	case errors.Is(err, domain.ErrCredentialMissing):
		return exitCredentials
	default:
		return exitFailure
	}
}
