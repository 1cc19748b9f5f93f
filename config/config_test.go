package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/domain"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
mode: live
platform: bybit
live_orders: true
data_dir: ./fixtures
listen_addr: ":9090"
quantity_step: "0.001"
quantity_steps:
  BTC_USDT: "0.0001"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, domain.ModeLive, cfg.Mode)
	assert.Equal(t, "bybit", cfg.Platform)
	assert.True(t, cfg.LiveOrders)
	assert.Equal(t, "./fixtures", cfg.DataDir)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.True(t, cfg.QuantityStep.Equal(decimal.NewFromFloat(0.001)))
	assert.True(t, cfg.StepFor(domain.Pair{From: "BTC", To: "USDT"}).Equal(decimal.NewFromFloat(0.0001)))
	assert.True(t, cfg.StepFor(domain.Pair{From: "ETH", To: "USDT"}).Equal(decimal.NewFromFloat(0.001)))
}

func TestLoad_BadMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: paper\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_BadPlatform(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("platform: kraken\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := Default()
	cfg.Mode = domain.ModeLive
	cfg.LiveOrders = true
	cfg.Steps = map[string]decimal.Decimal{"ETH_USDT": decimal.NewFromFloat(0.01)}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Mode, loaded.Mode)
	assert.True(t, loaded.LiveOrders)
	assert.True(t, loaded.StepFor(domain.Pair{From: "ETH", To: "USDT"}).Equal(decimal.NewFromFloat(0.01)))
}
