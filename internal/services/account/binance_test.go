package account

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adshao/go-binance/v2"
	"github.com/adshao/go-binance/v2/common"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/domain"
)

func testDelta() domain.Delta {
	return domain.Delta{
		OrderID:  "test-order",
		Pair:     domain.Pair{From: "BTC", To: "USDT"},
		Side:     domain.SideBuy,
		Quantity: decimal.NewFromFloat(0.5),
		Price:    decimal.NewFromInt(68250),
	}
}

func TestClassifyOrderError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind error
	}{
		{
			name: "insufficient balance",
			err:  &common.APIError{Code: -2010, Message: "Account has insufficient balance for requested action."},
			kind: domain.ErrInsufficientBalance,
		},
		{
			name: "lot size filter",
			err:  &common.APIError{Code: -1013, Message: "Filter failure: LOT_SIZE"},
			kind: domain.ErrInvalidOrder,
		},
		{
			name: "bad precision",
			err:  &common.APIError{Code: -1111, Message: "Precision is over the maximum defined for this asset."},
			kind: domain.ErrInvalidOrder,
		},
		{
			name: "unknown symbol",
			err:  &common.APIError{Code: -1121, Message: "Invalid symbol."},
			kind: domain.ErrUnknownSymbol,
		},
		{
			name: "wrapped api error",
			err:  errors.Wrap(&common.APIError{Code: -2010, Message: "rejected"}, "create order"),
			kind: domain.ErrInsufficientBalance,
		},
		{
			name: "transport failure",
			err:  errors.New("connection reset by peer"),
			kind: domain.ErrDataUnavailable,
		},
		{
			name: "unrecognized api code",
			err:  &common.APIError{Code: -1003, Message: "Too many requests."},
			kind: domain.ErrDataUnavailable,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classifyOrderError(tc.err, testDelta())
			assert.ErrorIs(t, got, tc.kind)
		})
	}
}

func TestBinanceAccount_ApplyDeltaReadOnly(t *testing.T) {
	acct := NewBinanceAccount(binance.NewClient("", ""), false, nil)

	_, err := acct.ApplyDelta(context.Background(), testDelta())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedOperation)
}

func TestBinanceAccount_InsufficientBalanceRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":-2010,"msg":"Account has insufficient balance for requested action."}`))
	}))
	t.Cleanup(srv.Close)

	client := binance.NewClient("key", "secret")
	client.BaseURL = srv.URL
	client.HTTPClient = srv.Client()

	acct := NewBinanceAccount(client, true, nil)

	_, err := acct.ApplyDelta(context.Background(), testDelta())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance, "Rejection for funds must not read as a connectivity error")
	assert.NotErrorIs(t, err, domain.ErrDataUnavailable)
}
