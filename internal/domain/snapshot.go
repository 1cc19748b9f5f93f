package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetValuation is one asset of a portfolio snapshot priced in the quote asset.
type AssetValuation struct {
	Asset    string          `json:"asset"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Value    decimal.Decimal `json:"value"`
}

// PortfolioSnapshot is a derived, read-only view combining balances with
// current prices. Recomputed on demand, never cached.
type PortfolioSnapshot struct {
	Time   time.Time        `json:"time"`
	Mode   Mode             `json:"mode"`
	Quote  string           `json:"quote"`
	Assets []AssetValuation `json:"assets"`
	Total  decimal.Decimal  `json:"total"`
}

// PortfolioSnapshotRecord bundles a journaled snapshot with its WAL index.
type PortfolioSnapshotRecord struct {
	Index    uint64
	Snapshot PortfolioSnapshot
}
