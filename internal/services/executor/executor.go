// Package executor applies buy/sell instructions to an account using prices
// from a market data provider. Validation always precedes mutation, so a
// failed order leaves balances untouched.
package executor

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/domain"
	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/services/account"
	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/services/pricer"
)

// Executor fills orders completely and immediately at the quoted price.
type Executor struct {
	logger *zap.Logger
}

// New creates an Executor.
func New(logger *zap.Logger) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{logger: logger}
}

// Execute validates the order, looks up the current price, and commits the
// resulting balance deltas through the account provider in one atomic update.
// No retries: a failed order is reported, not replayed.
func (e *Executor) Execute(ctx context.Context, order domain.Order, prices pricer.Pricer, acct account.Provider) (domain.TradeRecord, error) {
	if order.Quantity.LessThanOrEqual(decimal.Zero) {
		return domain.TradeRecord{}, errors.Wrapf(domain.ErrInvalidOrder,
			"quantity must be positive, got %s", order.Quantity.String())
	}
	if order.Side != domain.SideBuy && order.Side != domain.SideSell {
		return domain.TradeRecord{}, errors.Wrapf(domain.ErrInvalidOrder, "unknown side %q", order.Side)
	}

	price, err := prices.GetPrice(ctx, order.Pair)
	if err != nil {
		return domain.TradeRecord{}, err
	}

	notional := order.Quantity.Mul(price)

	deltas := make(map[string]decimal.Decimal, 2)
	switch order.Side {
	case domain.SideBuy:
		deltas[order.Pair.To] = notional.Neg()
		deltas[order.Pair.From] = order.Quantity
	case domain.SideSell:
		deltas[order.Pair.From] = order.Quantity.Neg()
		deltas[order.Pair.To] = notional
	}

	delta := domain.Delta{
		OrderID:  uuid.NewString(),
		Pair:     order.Pair,
		Side:     order.Side,
		Quantity: order.Quantity,
		Price:    price,
		Assets:   deltas,
	}

	if _, err := acct.ApplyDelta(ctx, delta); err != nil {
		return domain.TradeRecord{}, err
	}

	record := domain.TradeRecord{
		ID:       delta.OrderID,
		Pair:     order.Pair.String(),
		Side:     order.Side,
		Quantity: order.Quantity,
		Price:    price,
		Notional: notional,
		Deltas:   deltas,
		Time:     time.Now().UTC(),
	}

	e.logger.Info("order filled",
		zap.String("id", record.ID),
		zap.String("pair", record.Pair),
		zap.String("side", string(record.Side)),
		zap.String("quantity", record.Quantity.String()),
		zap.String("price", record.Price.String()),
		zap.String("notional", record.Notional.String()))

	return record, nil
}
