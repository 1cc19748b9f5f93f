package fixtures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WritesDefaults(t *testing.T) {
	dir := t.TempDir()

	set, err := Load(dir)
	require.NoError(t, err)

	// default files are created on first load
	_, err = os.Stat(filepath.Join(dir, pricesFileName))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, balanceFileName))
	require.NoError(t, err)

	assert.Len(t, set.Pairs, 4)
	assert.True(t, set.Prices["BTCUSDT"].Equal(decimal.NewFromFloat(68250)))
	assert.True(t, set.Balances.Get("USDT").Equal(decimal.NewFromInt(10000)))
	assert.True(t, set.Balances.Get("BTC").IsZero())
}

func TestLoad_ReadsExistingFiles(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, pricesFileName),
		[]byte(`[{"pair":"DOGE_USDT","price":"0.12"}]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, balanceFileName),
		[]byte(`{"USDT":"500","DOGE":"100"}`), 0o644))

	set, err := Load(dir)
	require.NoError(t, err)

	require.Len(t, set.Pairs, 1)
	assert.Equal(t, "DOGE_USDT", set.Pairs[0].String())
	assert.True(t, set.Prices["DOGEUSDT"].Equal(decimal.NewFromFloat(0.12)))
	assert.True(t, set.Balances.Get("DOGE").Equal(decimal.NewFromInt(100)))
}

func TestLoad_RejectsBadFixtures(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, pricesFileName),
		[]byte(`[{"pair":"BTC_USDT","price":"-1"}]`), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_RejectsDuplicatePairs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, pricesFileName),
		[]byte(`[{"pair":"BTC_USDT","price":"68250"},{"pair":"BTC_USDT","price":"68300"}]`), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestLoad_RejectsNegativeBalance(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, balanceFileName),
		[]byte(`{"USDT":"-10"}`), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}
