package pricer

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/domain"
)

// StaticPricer serves prices from a fixed in-memory table loaded once at
// startup. Deterministic, no side effects; the only failure is an unknown
// symbol.
type StaticPricer struct {
	prices map[string]decimal.Decimal
	pairs  []domain.Pair
}

// NewStaticPricer creates a pricer over the given fixture table. Prices are
// keyed by the concatenated symbol form, e.g. "BTCUSDT".
func NewStaticPricer(prices map[string]decimal.Decimal, pairs []domain.Pair) *StaticPricer {
	table := make(map[string]decimal.Decimal, len(prices))
	for symbol, price := range prices {
		table[symbol] = price
	}

	watch := make([]domain.Pair, len(pairs))
	copy(watch, pairs)
	sort.Slice(watch, func(i, j int) bool { return watch[i].String() < watch[j].String() })

	return &StaticPricer{prices: table, pairs: watch}
}

// GetPrice looks up the fixture price for the pair.
func (p *StaticPricer) GetPrice(_ context.Context, pair domain.Pair) (decimal.Decimal, error) {
	price, ok := p.prices[pair.Symbol()]
	if !ok {
		return decimal.Decimal{}, errors.Wrapf(domain.ErrUnknownSymbol, "no fixture price for %s", pair.String())
	}
	return price, nil
}

// ListPrices returns quotes for the whole watch list in deterministic order.
func (p *StaticPricer) ListPrices(_ context.Context) ([]domain.Quote, error) {
	quotes := make([]domain.Quote, 0, len(p.pairs))
	for _, pair := range p.pairs {
		price, ok := p.prices[pair.Symbol()]
		if !ok {
			continue
		}
		quotes = append(quotes, domain.Quote{Pair: pair, Price: price})
	}
	return quotes, nil
}
