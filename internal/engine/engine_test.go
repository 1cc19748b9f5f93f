package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/config"
	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/domain"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	cfg := config.Default()
	cfg.DataDir = t.TempDir()
	cfg.SnapshotDir = "" // no journaling in unit tests

	e, err := New(cfg, zap.NewNop())
	require.NoError(t, err)
	return e
}

func TestEngine_StartsInMockMode(t *testing.T) {
	e := newTestEngine(t)
	assert.Equal(t, domain.ModeMock, e.Mode())

	balances, err := e.GetBalance(context.Background())
	require.NoError(t, err)
	assert.True(t, balances.Get("USDT").Equal(decimal.NewFromInt(10000)))
}

func TestEngine_MockDeterminism(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	pair := domain.Pair{From: "BTC", To: "USDT"}

	first, err := e.GetPrice(ctx, pair)
	require.NoError(t, err)
	second, err := e.GetPrice(ctx, pair)
	require.NoError(t, err)
	assert.True(t, first.Equal(second))

	b1, err := e.GetBalance(ctx)
	require.NoError(t, err)
	b2, err := e.GetBalance(ctx)
	require.NoError(t, err)
	assert.True(t, b1.Get("USDT").Equal(b2.Get("USDT")))
}

func TestEngine_PlaceOrder(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	record, err := e.PlaceOrder(ctx, domain.Order{
		Pair:     domain.Pair{From: "BTC", To: "USDT"},
		Side:     domain.SideBuy,
		Quantity: decimal.NewFromFloat(0.1),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ModeMock, record.Mode)
	assert.True(t, record.Price.Equal(decimal.NewFromFloat(68250)))

	balances, err := e.GetBalance(ctx)
	require.NoError(t, err)
	assert.True(t, balances.Get("BTC").Equal(decimal.NewFromFloat(0.1)))
	assert.True(t, balances.Get("USDT").Equal(decimal.NewFromFloat(3175)))

	trades := e.Trades()
	require.Len(t, trades, 1)
	assert.Equal(t, record.ID, trades[0].ID)
}

func TestEngine_InvalidOrderNeverMutates(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	_, err := e.PlaceOrder(ctx, domain.Order{
		Pair:     domain.Pair{From: "BTC", To: "USDT"},
		Side:     domain.SideBuy,
		Quantity: decimal.Zero,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidOrder))

	balances, err := e.GetBalance(ctx)
	require.NoError(t, err)
	assert.True(t, balances.Get("USDT").Equal(decimal.NewFromInt(10000)))
	assert.Empty(t, e.Trades())
}

func TestEngine_SetModeLiveRequiresCredentials(t *testing.T) {
	e := newTestEngine(t)

	err := e.SetMode(domain.ModeLive, domain.Credentials{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCredentialMissing))
	assert.Equal(t, domain.ModeMock, e.Mode())
}

func TestEngine_ModeRoundTripPreservesMockBalance(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	_, err := e.PlaceOrder(ctx, domain.Order{
		Pair:     domain.Pair{From: "ETH", To: "USDT"},
		Side:     domain.SideBuy,
		Quantity: decimal.NewFromInt(1),
	})
	require.NoError(t, err)

	before, err := e.GetBalance(ctx)
	require.NoError(t, err)

	// switching builds live providers but never dials; switching back must
	// restore the exact mock state
	require.NoError(t, e.SetMode(domain.ModeLive, domain.Credentials{APIKey: "k", APISecret: "s"}))
	assert.Equal(t, domain.ModeLive, e.Mode())
	require.NoError(t, e.SetMode(domain.ModeMock, domain.Credentials{}))

	after, err := e.GetBalance(ctx)
	require.NoError(t, err)
	assert.True(t, before.Get("USDT").Equal(after.Get("USDT")))
	assert.True(t, before.Get("ETH").Equal(after.Get("ETH")))
}

func TestEngine_IndependentInstances(t *testing.T) {
	a := newTestEngine(t)
	b := newTestEngine(t)
	ctx := context.Background()

	_, err := a.PlaceOrder(ctx, domain.Order{
		Pair:     domain.Pair{From: "BTC", To: "USDT"},
		Side:     domain.SideBuy,
		Quantity: decimal.NewFromFloat(0.05),
	})
	require.NoError(t, err)

	balances, err := b.GetBalance(ctx)
	require.NoError(t, err)
	assert.True(t, balances.Get("USDT").Equal(decimal.NewFromInt(10000)))
	assert.True(t, balances.Get("BTC").IsZero())
}

func TestEngine_ComputeSize(t *testing.T) {
	e := newTestEngine(t)

	qty, err := e.ComputeSize(
		domain.Pair{From: "BTC", To: "USDT"},
		decimal.NewFromInt(1000),
		decimal.NewFromInt(100),
		decimal.NewFromInt(98),
		decimal.NewFromFloat(0.02),
	)
	require.NoError(t, err)
	assert.True(t, qty.Equal(decimal.NewFromInt(10)))

	_, err = e.ComputeSize(
		domain.Pair{From: "BTC", To: "USDT"},
		decimal.NewFromInt(1000),
		decimal.NewFromInt(100),
		decimal.NewFromInt(100),
		decimal.NewFromFloat(0.02),
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRisk))
}

func TestEngine_Portfolio(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	_, err := e.PlaceOrder(ctx, domain.Order{
		Pair:     domain.Pair{From: "BTC", To: "USDT"},
		Side:     domain.SideBuy,
		Quantity: decimal.NewFromFloat(0.1),
	})
	require.NoError(t, err)

	snapshot, err := e.Portfolio(ctx)
	require.NoError(t, err)

	assert.Equal(t, domain.ModeMock, snapshot.Mode)
	assert.Equal(t, "USDT", snapshot.Quote)
	// value is conserved at the fill price, so the total still equals the seed
	assert.True(t, snapshot.Total.Equal(decimal.NewFromInt(10000)), "got %s", snapshot.Total.String())

	var btc domain.AssetValuation
	for _, asset := range snapshot.Assets {
		if asset.Asset == "BTC" {
			btc = asset
		}
	}
	assert.True(t, btc.Quantity.Equal(decimal.NewFromFloat(0.1)))
	assert.True(t, btc.Value.Equal(decimal.NewFromFloat(6825)))
}
