// Package fixtures loads the static price and balance records backing mock
// mode. Missing files are created with default demo data so a fresh checkout
// works without any setup.
package fixtures

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/domain"
)

const (
	pricesFileName  = "mock_prices.json"
	balanceFileName = "mock_balance.json"
)

// PriceRecord is one fixture entry mapping a pair to its quoted price.
type PriceRecord struct {
	Pair  string `json:"pair"`
	Price string `json:"price"`
}

// Set holds the fixture data loaded once at startup.
type Set struct {
	// Prices is keyed by the concatenated symbol form, e.g. "BTCUSDT".
	Prices map[string]decimal.Decimal
	// Pairs is the watch list in deterministic order.
	Pairs []domain.Pair
	// Balances is the seed wallet for the static account provider.
	Balances domain.Balances
}

func defaultPrices() []PriceRecord {
	return []PriceRecord{
		{Pair: "BTC_USDT", Price: "68250.00"},
		{Pair: "ETH_USDT", Price: "3650.00"},
		{Pair: "BNB_USDT", Price: "590.00"},
		{Pair: "SOL_USDT", Price: "190.50"},
	}
}

func defaultBalances() map[string]string {
	return map[string]string{
		"USDT": "10000",
		"BTC":  "0",
		"ETH":  "0",
		"BNB":  "0",
		"SOL":  "0",
	}
}

// Load reads the fixture files under dir, writing defaults for any file that
// does not exist yet.
func Load(dir string) (*Set, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create fixtures dir")
	}

	records, err := loadPrices(filepath.Join(dir, pricesFileName))
	if err != nil {
		return nil, err
	}

	seed, err := loadBalances(filepath.Join(dir, balanceFileName))
	if err != nil {
		return nil, err
	}

	set := &Set{
		Prices:   make(map[string]decimal.Decimal, len(records)),
		Pairs:    make([]domain.Pair, 0, len(records)),
		Balances: make(domain.Balances, len(seed)),
	}

	for _, rec := range records {
		pair, err := domain.PairFromString(rec.Pair)
		if err != nil {
			return nil, errors.Wrapf(err, "fixture pair %q", rec.Pair)
		}
		price, err := decimal.NewFromString(rec.Price)
		if err != nil {
			return nil, errors.Wrapf(err, "fixture price for %q", rec.Pair)
		}
		if price.LessThanOrEqual(decimal.Zero) {
			return nil, errors.Errorf("fixture price for %q must be positive, got %s", rec.Pair, price.String())
		}
		if _, exists := set.Prices[pair.Symbol()]; exists {
			return nil, errors.Errorf("duplicate fixture pair %q", rec.Pair)
		}
		set.Prices[pair.Symbol()] = price
		set.Pairs = append(set.Pairs, pair)
	}

	for asset, qty := range seed {
		parsed, err := decimal.NewFromString(qty)
		if err != nil {
			return nil, errors.Wrapf(err, "fixture balance for %q", asset)
		}
		if parsed.IsNegative() {
			return nil, errors.Errorf("fixture balance for %q must not be negative, got %s", asset, parsed.String())
		}
		set.Balances[asset] = parsed
	}

	sort.Slice(set.Pairs, func(i, j int) bool {
		return set.Pairs[i].String() < set.Pairs[j].String()
	})

	return set, nil
}

func loadPrices(path string) ([]PriceRecord, error) {
	payload, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		records := defaultPrices()
		if err := writeJSON(path, records); err != nil {
			return nil, err
		}
		return records, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read price fixtures")
	}

	var records []PriceRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, errors.Wrap(err, "decode price fixtures")
	}
	return records, nil
}

func loadBalances(path string) (map[string]string, error) {
	payload, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		seed := defaultBalances()
		if err := writeJSON(path, seed); err != nil {
			return nil, err
		}
		return seed, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read balance fixtures")
	}

	var seed map[string]string
	if err := json.Unmarshal(payload, &seed); err != nil {
		return nil, errors.Wrap(err, "decode balance fixtures")
	}
	return seed, nil
}

func writeJSON(path string, v any) error {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode fixtures")
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return errors.Wrap(err, "write fixtures")
	}
	return nil
}
