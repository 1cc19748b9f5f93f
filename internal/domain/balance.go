package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Balances maps asset symbol to the quantity held. Values are never negative.
type Balances map[string]decimal.Decimal

// Get returns the balance for an asset, zero when the asset is unknown.
func (b Balances) Get(asset string) decimal.Decimal {
	if v, ok := b[asset]; ok {
		return v
	}
	return decimal.Zero
}

// Clone returns an independent copy.
func (b Balances) Clone() Balances {
	out := make(Balances, len(b))
	for asset, qty := range b {
		out[asset] = qty
	}
	return out
}

// Assets returns the asset symbols in deterministic order.
func (b Balances) Assets() []string {
	assets := make([]string, 0, len(b))
	for asset := range b {
		assets = append(assets, asset)
	}
	sort.Strings(assets)
	return assets
}
