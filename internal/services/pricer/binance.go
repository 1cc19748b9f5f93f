package pricer

import (
	"context"

	"github.com/adshao/go-binance/v2"
	"github.com/adshao/go-binance/v2/common"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/domain"
	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/pkg/retrier"
)

// binanceInvalidSymbolCode is the API error code for an unknown symbol.
const binanceInvalidSymbolCode = -1121

// BinancePricer fetches prices from the Binance spot testnet. It never
// caches; every call reflects the latest fetch attempt.
type BinancePricer struct {
	client  *binance.Client
	pairs   []domain.Pair
	retrier *retrier.Retrier
}

// NewBinancePricer creates a live pricer over the testnet client. The pairs
// form the watch list used by ListPrices.
func NewBinancePricer(client *binance.Client, pairs []domain.Pair) *BinancePricer {
	return &BinancePricer{
		client:  client,
		pairs:   pairs,
		retrier: retrier.New(),
	}
}

// GetPrice fetches the current ticker price for the pair. An unknown-symbol
// rejection is definitive and fails on the first attempt; only transport
// failures go through the retrier.
func (p *BinancePricer) GetPrice(ctx context.Context, pair domain.Pair) (decimal.Decimal, error) {
	prices, err := retrier.DoWithData(p.retrier, ctx, func(ctx context.Context) ([]*binance.SymbolPrice, error) {
		prices, err := p.client.NewListPricesService().Symbol(pair.Symbol()).Do(ctx)
		if apiErr, ok := err.(*common.APIError); ok && apiErr.Code == binanceInvalidSymbolCode {
			return nil, retrier.Permanent(errors.Wrapf(domain.ErrUnknownSymbol, "binance does not list %s", pair.String()))
		}
		return prices, err
	})
	if err != nil {
		if errors.Is(err, domain.ErrUnknownSymbol) {
			return decimal.Decimal{}, err
		}
		return decimal.Decimal{}, errors.Wrapf(domain.ErrDataUnavailable, "binance price fetch for %s: %v", pair.String(), err)
	}
	if len(prices) == 0 {
		return decimal.Decimal{}, errors.Wrapf(domain.ErrDataUnavailable, "binance returned empty prices for %s", pair.String())
	}

	price, err := decimal.NewFromString(prices[0].Price)
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(domain.ErrDataUnavailable, "binance price for %s: %v", pair.String(), err)
	}
	return price, nil
}

// ListPrices fetches quotes for the whole watch list.
func (p *BinancePricer) ListPrices(ctx context.Context) ([]domain.Quote, error) {
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
