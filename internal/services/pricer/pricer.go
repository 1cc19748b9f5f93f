// Package pricer supplies current market prices for trading pairs. Two
// variants exist behind one interface: a deterministic fixture-backed table
// and exchange test-network clients.
package pricer

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/domain"
)

// Pricer supplies the current price for a symbol.
type Pricer interface {
	GetPrice(ctx context.Context, pair domain.Pair) (decimal.Decimal, error)
	ListPrices(ctx context.Context) ([]domain.Quote, error)
}
