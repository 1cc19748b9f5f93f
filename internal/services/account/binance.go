package account

import (
	"context"

	"github.com/adshao/go-binance/v2"
	"github.com/adshao/go-binance/v2/common"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/domain"
)

// API error codes the order endpoint answers with for definitive rejections.
const (
	binanceOrderRejectedCode   = -2010 // insufficient balance and other NEW_ORDER_REJECTED reasons
	binanceInvalidQuantityCode = -1013 // filter failure, e.g. LOT_SIZE or MIN_NOTIONAL
	binanceBadPrecisionCode    = -1111
	binanceBadParameterCode    = -1100
	binanceUnknownSymbolCode   = -1121
)

// BinanceAccount reads balances from the Binance spot testnet. Real order
// placement is a separate capability: it must be enabled explicitly and is
// never implied by live mode alone.
type BinanceAccount struct {
	client      *binance.Client
	allowOrders bool
	logger      *zap.Logger
}

// NewBinanceAccount creates a live account provider. With allowOrders false
// the provider is read-only and ApplyDelta fails with ErrUnsupportedOperation.
func NewBinanceAccount(client *binance.Client, allowOrders bool, logger *zap.Logger) *BinanceAccount {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BinanceAccount{
		client:      client,
		allowOrders: allowOrders,
		logger:      logger,
	}
}

// Balances fetches the free spot balances from the testnet account endpoint.
func (a *BinanceAccount) Balances(ctx context.Context) (domain.Balances, error) {
	acct, err := a.client.NewGetAccountService().Do(ctx)
	if err != nil {
		return nil, errors.Wrapf(domain.ErrDataUnavailable, "binance account fetch: %v", err)
	}

	balances := make(domain.Balances, len(acct.Balances))
	for _, b := range acct.Balances {
		free, err := decimal.NewFromString(b.Free)
		if err != nil {
			return nil, errors.Wrapf(domain.ErrDataUnavailable, "binance balance for %s: %v", b.Asset, err)
		}
		if free.IsZero() {
			continue
		}
		balances[b.Asset] = free
	}

	return balances, nil
}

// ApplyDelta submits the fill as a real testnet market order when the order
// capability is enabled.
func (a *BinanceAccount) ApplyDelta(ctx context.Context, delta domain.Delta) (domain.Balances, error) {
	if !a.allowOrders {
		return nil, errors.Wrap(domain.ErrUnsupportedOperation, "live order placement is not enabled")
	}

	side := binance.SideTypeBuy
	if delta.Side == domain.SideSell {
		side = binance.SideTypeSell
	}

	_, err := a.client.NewCreateOrderService().
		Symbol(delta.Pair.Symbol()).
		Side(side).
		Type(binance.OrderTypeMarket).
		Quantity(delta.Quantity.String()).
		NewClientOrderID(delta.OrderID).
		Do(ctx)
	if err != nil {
		return nil, classifyOrderError(err, delta)
	}

	a.logger.Info("testnet order submitted",
		zap.String("order_id", delta.OrderID),
		zap.String("pair", delta.Pair.String()),
		zap.String("side", string(delta.Side)),
		zap.String("quantity", delta.Quantity.String()))

	return a.Balances(ctx)
}

// classifyOrderError maps an order rejection to its error kind so callers see
// the same kinds the static account reports. Anything without a recognized
// API code stays a transport failure.
func classifyOrderError(err error, delta domain.Delta) error {
	var apiErr *common.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case binanceOrderRejectedCode:
			return errors.Wrapf(domain.ErrInsufficientBalance,
				"binance rejected %s %s %s: %s", delta.Side, delta.Quantity.String(), delta.Pair.String(), apiErr.Message)
		case binanceInvalidQuantityCode, binanceBadPrecisionCode, binanceBadParameterCode:
			return errors.Wrapf(domain.ErrInvalidOrder,
				"binance rejected %s %s %s: %s", delta.Side, delta.Quantity.String(), delta.Pair.String(), apiErr.Message)
		case binanceUnknownSymbolCode:
			return errors.Wrapf(domain.ErrUnknownSymbol, "binance does not list %s", delta.Pair.String())
		}
	}
	return errors.Wrapf(domain.ErrDataUnavailable, "binance testnet order: %v", err)
}
