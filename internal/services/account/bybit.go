package account

import (
	"context"

	"github.com/hirokisan/bybit/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/domain"
)

// BybitAccount reads unified wallet balances from the Bybit test network.
// It is read-only: order placement is only implemented for Binance.
type BybitAccount struct {
	client *bybit.Client
}

// NewBybitAccount creates a read-only live account provider.
func NewBybitAccount(client *bybit.Client) *BybitAccount {
	return &BybitAccount{client: client}
}

// Balances fetches the unified wallet balances.
func (a *BybitAccount) Balances(_ context.Context) (domain.Balances, error) {
	res, err := a.client.V5().Account().GetWalletBalance(bybit.AccountTypeV5("UNIFIED"), nil)
	if err != nil {
		return nil, errors.Wrapf(domain.ErrDataUnavailable, "bybit wallet fetch: %v", err)
	}
	if len(res.Result.List) == 0 {
		return nil, errors.Wrap(domain.ErrDataUnavailable, "bybit returned empty wallet list")
	}

	balances := make(domain.Balances)
	for _, coin := range res.Result.List[0].Coin {
		qty, err := decimal.NewFromString(coin.WalletBalance)
		if err != nil {
			return nil, errors.Wrapf(domain.ErrDataUnavailable, "bybit balance for %s: %v", coin.Coin, err)
		}
		if qty.IsZero() {
			continue
		}
		balances[string(coin.Coin)] = qty
	}

	return balances, nil
}

// ApplyDelta always fails: the Bybit variant has no order capability.
func (a *BybitAccount) ApplyDelta(context.Context, domain.Delta) (domain.Balances, error) {
	return nil, errors.Wrap(domain.ErrUnsupportedOperation, "bybit backend is read-only")
}
