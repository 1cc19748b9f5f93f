package account

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/domain"
)

// StaticAccount keeps balances in memory, seeded from fixtures. All mutation
// goes through ApplyDelta under one lock; validation happens before any
// balance is touched.
type StaticAccount struct {
	mu     sync.RWMutex
	wallet domain.Balances
	logger *zap.Logger
}

// NewStaticAccount creates an account seeded with the given balances.
func NewStaticAccount(seed domain.Balances, logger *zap.Logger) *StaticAccount {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StaticAccount{
		wallet: seed.Clone(),
		logger: logger,
	}
}

// Balances returns a copy of the current holdings.
func (a *StaticAccount) Balances(_ context.Context) (domain.Balances, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.wallet.Clone(), nil
}

// ApplyDelta validates that no asset would go negative, then commits all
// deltas at once.
func (a *StaticAccount) ApplyDelta(_ context.Context, delta domain.Delta) (domain.Balances, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for asset, change := range delta.Assets {
		next := a.wallet.Get(asset).Add(change)
		if next.IsNegative() {
			return nil, errors.Wrapf(domain.ErrInsufficientBalance,
				"%s balance %s cannot cover %s",
				asset, a.wallet.Get(asset).String(), change.Neg().String())
		}
	}

	for asset, change := range delta.Assets {
		a.wallet[asset] = a.wallet.Get(asset).Add(change)
	}

	a.logger.Info("balance delta applied",
		zap.String("order_id", delta.OrderID),
		zap.String("pair", delta.Pair.String()),
		zap.String("side", string(delta.Side)),
		zap.String("quantity", delta.Quantity.String()),
		zap.String("price", delta.Price.String()))

	return a.wallet.Clone(), nil
}
