package pricer

import (
	"context"

	"github.com/hirokisan/bybit/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/domain"
	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/pkg/retrier"
)

// BybitPricer fetches spot ticker prices from the Bybit test network.
type BybitPricer struct {
	client  *bybit.Client
	pairs   []domain.Pair
	retrier *retrier.Retrier
}

// NewBybitPricer creates a live pricer over the Bybit testnet client.
func NewBybitPricer(client *bybit.Client, pairs []domain.Pair) *BybitPricer {
	return &BybitPricer{
		client:  client,
		pairs:   pairs,
		retrier: retrier.New(),
	}
}

// GetPrice fetches the current spot ticker price for the pair.
func (p *BybitPricer) GetPrice(ctx context.Context, pair domain.Pair) (decimal.Decimal, error) {
	symbol := bybit.SymbolV5(pair.Symbol())

	result, err := retrier.DoWithData(p.retrier, ctx, func(ctx context.Context) (*bybit.V5GetTickersResponse, error) {
		return p.client.V5().Market().GetTickers(bybit.V5GetTickersParam{
			Category: "spot",
			Symbol:   &symbol,
		})
	})
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(domain.ErrDataUnavailable, "bybit price fetch for %s: %v", pair.String(), err)
	}
	if len(result.Result.Spot.List) == 0 {
		return decimal.Decimal{}, errors.Wrapf(domain.ErrUnknownSymbol, "bybit does not list %s", pair.String())
	}

	price, err := decimal.NewFromString(result.Result.Spot.List[0].LastPrice)
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(domain.ErrDataUnavailable, "bybit price for %s: %v", pair.String(), err)
	}
	return price, nil
}

// ListPrices fetches quotes for the whole watch list.
func (p *BybitPricer) ListPrices(ctx context.Context) ([]domain.Quote, error) {
	quotes := make([]domain.Quote, 0, len(p.pairs))
	for _, pair := range p.pairs {
		price, err := p.GetPrice(ctx, pair)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, domain.Quote{Pair: pair, Price: price})
	}
	return quotes, nil
}
