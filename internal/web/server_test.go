package web

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/domain"
)

type stubEngine struct{}

func (stubEngine) Portfolio(context.Context) (domain.PortfolioSnapshot, error) {
	return domain.PortfolioSnapshot{
		Time:  time.Unix(0, 0).UTC(),
		Mode:  domain.ModeMock,
		Quote: "USDT",
		Assets: []domain.AssetValuation{
			{Asset: "USDT", Quantity: decimal.NewFromInt(10000), Price: decimal.NewFromInt(1), Value: decimal.NewFromInt(10000)},
		},
		Total: decimal.NewFromInt(10000),
	}, nil
}

func (stubEngine) ListPrices(context.Context) ([]domain.Quote, error) {
	return []domain.Quote{
		{Pair: domain.Pair{From: "BTC", To: "USDT"}, Price: decimal.NewFromInt(68250)},
	}, nil
}

func (stubEngine) Trades() []domain.TradeRecord { return nil }

type stubStore struct {
	records []domain.PortfolioSnapshotRecord
}

func (s stubStore) Latest(n int) ([]domain.PortfolioSnapshotRecord, error) {
	if n < len(s.records) {
		return s.records[len(s.records)-n:], nil
	}
	return s.records, nil
}

func (s stubStore) SnapshotsAfter(index uint64) ([]domain.PortfolioSnapshotRecord, error) {
	var out []domain.PortfolioSnapshotRecord
	for _, r := range s.records {
		if r.Index > index {
			out = append(out, r)
		}
	}
	return out, nil
}

func TestServer_Portfolio(t *testing.T) {
	s := NewServer(":0", stubEngine{}, nil)

	rec := httptest.NewRecorder()
	s.mux().ServeHTTP(rec, httptest.NewRequest("GET", "/api/portfolio", nil))

	require.Equal(t, 200, rec.Code)
	var snapshot domain.PortfolioSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	assert.Equal(t, domain.ModeMock, snapshot.Mode)
	assert.True(t, snapshot.Total.Equal(decimal.NewFromInt(10000)))
}

func TestServer_Prices(t *testing.T) {
	s := NewServer(":0", stubEngine{}, nil)

	rec := httptest.NewRecorder()
	s.mux().ServeHTTP(rec, httptest.NewRequest("GET", "/api/prices", nil))

	require.Equal(t, 200, rec.Code)
	var quotes []struct {
		Pair  string `json:"pair"`
		Price string `json:"price"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quotes))
	require.Len(t, quotes, 1)
	assert.Equal(t, "BTC_USDT", quotes[0].Pair)
	assert.Equal(t, "68250", quotes[0].Price)
}

func TestServer_StreamBackfillsRecentSnapshots(t *testing.T) {
	store := stubStore{records: []domain.PortfolioSnapshotRecord{
		{Index: 1, Snapshot: domain.PortfolioSnapshot{Mode: domain.ModeMock, Quote: "USDT", Total: decimal.NewFromInt(10000)}},
		{Index: 2, Snapshot: domain.PortfolioSnapshot{Mode: domain.ModeMock, Quote: "USDT", Total: decimal.NewFromInt(9500)}},
	}}
	s := NewServer(":0", stubEngine{}, store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/portfolio/stream", nil).WithContext(ctx)
	s.mux().ServeHTTP(rec, req)

	body := rec.Body.String()
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, 2, strings.Count(body, "event: portfolio"), "Both journaled snapshots must be replayed")
	assert.Contains(t, body, `"total":"10000"`)
	assert.Contains(t, body, `"total":"9500"`)
}

func TestServer_StreamUnavailableWithoutStore(t *testing.T) {
	s := NewServer(":0", stubEngine{}, nil)

	rec := httptest.NewRecorder()
	s.mux().ServeHTTP(rec, httptest.NewRequest("GET", "/portfolio/stream", nil))

	assert.Equal(t, 503, rec.Code)
}
