// Package config loads the simulator configuration from a YAML file with
// sensible defaults for a fresh checkout.
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/domain"
)

// Config is the resolved simulator configuration.
type Config struct {
	// Mode is the backend selection at startup; the engine can switch later.
	Mode domain.Mode
	// Platform selects the live exchange: "binance" or "bybit".
	Platform string
	// LiveOrders enables real testnet order placement in live mode.
	LiveOrders bool
	// DataDir holds the mock price/balance fixture files.
	DataDir string
	// SnapshotDir holds the portfolio snapshot WAL; empty disables journaling.
	SnapshotDir string
	// ListenAddr is the dashboard server address.
	ListenAddr string
	// TLSDomains enables automatic TLS for the dashboard when non-empty.
	TLSDomains []string
	// QuantityStep is the default minimum tradable increment.
	QuantityStep decimal.Decimal
	// Steps overrides the increment per pair, keyed by "BASE_QUOTE".
	Steps map[string]decimal.Decimal
	// SnapshotInterval is how often the dashboard journals a fresh snapshot.
	SnapshotInterval time.Duration
}

type configYaml struct {
	Mode             string            `yaml:"mode"`
	Platform         string            `yaml:"platform,omitempty"`
	LiveOrders       bool              `yaml:"live_orders,omitempty"`
	DataDir          string            `yaml:"data_dir,omitempty"`
	SnapshotDir      string            `yaml:"snapshot_dir,omitempty"`
	ListenAddr       string            `yaml:"listen_addr,omitempty"`
	TLSDomains       []string          `yaml:"tls_domains,omitempty"`
	QuantityStep     string            `yaml:"quantity_step,omitempty"`
	Steps            map[string]string `yaml:"quantity_steps,omitempty"`
	SnapshotInterval time.Duration     `yaml:"snapshot_interval,omitempty"`
}

// Default returns the configuration used when no config file is given.
func Default() Config {
	return Config{
		Mode:             domain.ModeMock,
		Platform:         "binance",
		DataDir:          "./data",
		SnapshotDir:      "./wal/portfolio",
		ListenAddr:       ":8080",
		QuantityStep:     domain.DefaultQuantityStep,
		SnapshotInterval: 5 * time.Second,
	}
}

// Load reads a YAML config file, filling unset fields with defaults.
func Load(path string) (Config, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}

	var raw configYaml
	if err := yaml.Unmarshal(payload, &raw); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}

	cfg := Default()

	if raw.Mode != "" {
		mode, err := domain.ModeFromString(raw.Mode)
		if err != nil {
			return Config{}, errors.Wrap(err, "incorrect 'mode' param in yaml config")
		}
		cfg.Mode = mode
	}
	if raw.Platform != "" {
		if raw.Platform != "binance" && raw.Platform != "bybit" {
			return Config{}, errors.Errorf("incorrect 'platform' param in yaml config: %q", raw.Platform)
		}
		cfg.Platform = raw.Platform
	}
	cfg.LiveOrders = raw.LiveOrders
	if raw.DataDir != "" {
		cfg.DataDir = raw.DataDir
	}
	if raw.SnapshotDir != "" {
		cfg.SnapshotDir = raw.SnapshotDir
	}
	if raw.ListenAddr != "" {
		cfg.ListenAddr = raw.ListenAddr
	}
	cfg.TLSDomains = raw.TLSDomains
	if raw.QuantityStep != "" {
		step, err := decimal.NewFromString(raw.QuantityStep)
		if err != nil || step.LessThanOrEqual(decimal.Zero) {
			return Config{}, errors.Errorf("incorrect 'quantity_step' param in yaml config: %q", raw.QuantityStep)
		}
		cfg.QuantityStep = step
	}
	if len(raw.Steps) > 0 {
		cfg.Steps = make(map[string]decimal.Decimal, len(raw.Steps))
		for pairStr, stepStr := range raw.Steps {
			pair, err := domain.PairFromString(pairStr)
			if err != nil {
				return Config{}, errors.Wrapf(err, "incorrect pair in 'quantity_steps': %q", pairStr)
			}
			step, err := decimal.NewFromString(stepStr)
			if err != nil || step.LessThanOrEqual(decimal.Zero) {
				return Config{}, errors.Errorf("incorrect step in 'quantity_steps' for %q: %q", pairStr, stepStr)
			}
			cfg.Steps[pair.String()] = step
		}
	}
	if raw.SnapshotInterval > 0 {
		cfg.SnapshotInterval = raw.SnapshotInterval
	}

	return cfg, nil
}

// Save writes the config as YAML; used by the setup wizard. Credentials are
// never part of the file.
func (c Config) Save(path string) error {
	raw := configYaml{
		Mode:             string(c.Mode),
		Platform:         c.Platform,
		LiveOrders:       c.LiveOrders,
		DataDir:          c.DataDir,
		SnapshotDir:      c.SnapshotDir,
		ListenAddr:       c.ListenAddr,
		TLSDomains:       c.TLSDomains,
		QuantityStep:     c.QuantityStep.String(),
		SnapshotInterval: c.SnapshotInterval,
	}
	if len(c.Steps) > 0 {
		raw.Steps = make(map[string]string, len(c.Steps))
		for pairStr, step := range c.Steps {
			raw.Steps[pairStr] = step.String()
		}
	}

	payload, err := yaml.Marshal(raw)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return errors.Wrap(err, "write config")
	}
	return nil
}

// StepFor returns the quantity step configured for the pair.
func (c Config) StepFor(pair domain.Pair) decimal.Decimal {
	if step, ok := c.Steps[pair.String()]; ok {
		return step
	}
	if c.QuantityStep.GreaterThan(decimal.Zero) {
		return c.QuantityStep
	}
	return domain.DefaultQuantityStep
}
