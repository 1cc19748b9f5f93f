// Package account owns balance state. A provider is the exclusive mutator of
// its balances; callers only ever see copies.
package account

import (
	"context"

	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/domain"
)

// Provider supplies current balances and applies fill deltas.
type Provider interface {
	// Balances returns a copy of the current holdings.
	Balances(ctx context.Context) (domain.Balances, error)
	// ApplyDelta applies one fill's balance mutation as a single atomic
	// update and returns the resulting balances. A failed delta leaves the
	// balances untouched.
	ApplyDelta(ctx context.Context, delta domain.Delta) (domain.Balances, error)
}
