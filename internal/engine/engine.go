// Package engine wires the provider variants behind one stable interface.
// Callers never see which backend answers; mock and live balances are
// independent universes.
package engine

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/config"
	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/clients"
	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/domain"
	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/services/account"
	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/services/executor"
	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/services/pricer"
	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/storage/fixtures"
	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/storage/snapshots"
)

// Engine holds the current mode and the bound provider instances for one
// user session. Engines are independently constructible; there is no
// process-wide state.
type Engine struct {
	mu     sync.Mutex
	logger *zap.Logger
	cfg    config.Config

	mode    domain.Mode
	pricer  pricer.Pricer
	account account.Provider

	// static providers are retained across mode switches so mock state
	// survives a round trip through live mode
	staticPricer  *pricer.StaticPricer
	staticAccount *account.StaticAccount

	pairs []domain.Pair
	exec  *executor.Executor

	store  *snapshots.WALStore
	trades []domain.TradeRecord
}

// New loads the fixtures and creates an engine bound to mock mode. Switching
// to live (when cfg.Mode asks for it) is the caller's job because it needs
// credentials.
func New(cfg config.Config, logger *zap.Logger) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	set, err := fixtures.Load(cfg.DataDir)
	if err != nil {
		return nil, errors.Wrap(err, "load fixtures")
	}

	e := &Engine{
		logger:        logger,
		cfg:           cfg,
		mode:          domain.ModeMock,
		staticPricer:  pricer.NewStaticPricer(set.Prices, set.Pairs),
		staticAccount: account.NewStaticAccount(set.Balances, logger),
		pairs:         set.Pairs,
		exec:          executor.New(logger),
	}
	e.pricer = e.staticPricer
	e.account = e.staticAccount

	if cfg.SnapshotDir != "" {
		store, err := snapshots.NewWALStore(cfg.SnapshotDir)
		if err != nil {
			return nil, errors.Wrap(err, "init snapshot store")
		}
		e.store = store
	}

	logger.Info("engine ready",
		zap.String("mode", string(e.mode)),
		zap.Int("pairs", len(e.pairs)))

	return e, nil
}

// Mode returns the currently selected mode.
func (e *Engine) Mode() domain.Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// SetMode rebinds the engine to the requested backend. Switching to live
// requires credentials; switching to mock requires none and drops any live
// credential reference immediately. The mode being left keeps its balance
// state untouched.
func (e *Engine) SetMode(mode domain.Mode, creds domain.Credentials) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch mode {
	case domain.ModeMock:
		e.pricer = e.staticPricer
		e.account = e.staticAccount
	case domain.ModeLive:
		if creds.Empty() {
			return errors.Wrapf(domain.ErrCredentialMissing, "platform %s", e.cfg.Platform)
		}
		switch e.cfg.Platform {
		case "bybit":
			client := clients.NewBybitTestnetClient(creds.APIKey, creds.APISecret)
			e.pricer = pricer.NewBybitPricer(client, e.pairs)
			e.account = account.NewBybitAccount(client)
		default:
			client := clients.NewBinanceTestnetClient(creds.APIKey, creds.APISecret)
			e.pricer = pricer.NewBinancePricer(client, e.pairs)
			e.account = account.NewBinanceAccount(client, e.cfg.LiveOrders, e.logger)
		}
	default:
		return errors.Errorf("unknown mode: %q", mode)
	}

	e.mode = mode
	e.logger.Info("mode switched", zap.String("mode", string(mode)))
	return nil
}

// providers returns the bound provider pair for the duration of one
// operation. An in-flight operation keeps using the providers it started
// with even if the mode switches underneath it.
func (e *Engine) providers() (pricer.Pricer, account.Provider, domain.Mode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pricer, e.account, e.mode
}

// GetPrice returns the current price for the pair from the bound backend.
func (e *Engine) GetPrice(ctx context.Context, pair domain.Pair) (decimal.Decimal, error) {
	prices, _, _ := e.providers()
	return prices.GetPrice(ctx, pair)
}

// ListPrices returns quotes for the configured watch list.
func (e *Engine) ListPrices(ctx context.Context) ([]domain.Quote, error) {
	prices, _, _ := e.providers()
	return prices.ListPrices(ctx)
}

// GetBalance returns the current holdings from the bound backend.
func (e *Engine) GetBalance(ctx context.Context) (domain.Balances, error) {
	_, acct, _ := e.providers()
	return acct.Balances(ctx)
}

// PlaceOrder executes a simulated market order against the bound backend and
// records the fill in the in-memory trade log.
func (e *Engine) PlaceOrder(ctx context.Context, order domain.Order) (domain.TradeRecord, error) {
	prices, acct, mode := e.providers()

	record, err := e.exec.Execute(ctx, order, prices, acct)
	if err != nil {
		return domain.TradeRecord{}, err
	}
	record.Mode = mode

	e.mu.Lock()
	e.trades = append(e.trades, record)
	e.mu.Unlock()

	if err := e.JournalSnapshot(ctx); err != nil {
		e.logger.Warn("failed to journal portfolio snapshot", zap.Error(err))
	}

	return record, nil
}

// ComputeSize runs the risk-based position sizing calculation with the
// pair's configured quantity step.
func (e *Engine) ComputeSize(pair domain.Pair, equity, entry, stop, riskFraction decimal.Decimal) (decimal.Decimal, error) {
	return domain.ComputeSize(domain.SizingRequest{
		Equity:       equity,
		EntryPrice:   entry,
		StopPrice:    stop,
		RiskFraction: riskFraction,
		Step:         e.cfg.StepFor(pair),
	})
}

// Trades returns a copy of the in-memory trade log.
func (e *Engine) Trades() []domain.TradeRecord {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]domain.TradeRecord, len(e.trades))
	copy(out, e.trades)
	return out
}

// Portfolio combines current balances with current prices into a read-only
// valuation snapshot. It is recomputed on every call, never cached.
func (e *Engine) Portfolio(ctx context.Context) (domain.PortfolioSnapshot, error) {
	prices, acct, mode := e.providers()

	balances, err := acct.Balances(ctx)
	if err != nil {
		return domain.PortfolioSnapshot{}, err
	}

	quote := e.quoteAsset()
	snapshot := domain.PortfolioSnapshot{
		Time:  time.Now().UTC(),
		Mode:  mode,
		Quote: quote,
		Total: decimal.Zero,
	}

	for _, asset := range balances.Assets() {
		qty := balances.Get(asset)
		valuation := domain.AssetValuation{Asset: asset, Quantity: qty}

		if asset == quote {
			valuation.Price = decimal.NewFromInt(1)
			valuation.Value = qty
		} else {
			price, err := prices.GetPrice(ctx, domain.Pair{From: asset, To: quote})
			switch {
			case err == nil:
				valuation.Price = price
				valuation.Value = qty.Mul(price)
			case errors.Is(err, domain.ErrUnknownSymbol):
				// unquotable asset stays in the snapshot with zero value
			default:
				return domain.PortfolioSnapshot{}, err
			}
		}

		snapshot.Assets = append(snapshot.Assets, valuation)
		snapshot.Total = snapshot.Total.Add(valuation.Value)
	}

	return snapshot, nil
}

// JournalSnapshot computes a portfolio snapshot and appends it to the WAL
// store. A no-op when journaling is disabled.
func (e *Engine) JournalSnapshot(ctx context.Context) error {
	if e.store == nil {
		return nil
	}
	snapshot, err := e.Portfolio(ctx)
	if err != nil {
		return err
	}
	return e.store.Save(snapshot)
}

// SnapshotStore exposes the journal for the dashboard stream; nil when
// journaling is disabled.
func (e *Engine) SnapshotStore() *snapshots.WALStore {
	return e.store
}

// Pairs returns the configured watch list.
func (e *Engine) Pairs() []domain.Pair {
	out := make([]domain.Pair, len(e.pairs))
	copy(out, e.pairs)
	return out
}

// Close releases the snapshot journal.
func (e *Engine) Close() error {
	if e.store == nil {
		return nil
	}
	return e.store.Close()
}

func (e *Engine) quoteAsset() string {
	if len(e.pairs) > 0 {
		return e.pairs[0].To
	}
	return "USDT"
}
