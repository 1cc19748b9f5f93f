// Package cmd holds the papertrader subcommand tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/config"
	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/domain"
	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/engine"
)

var (
	cfgFile  string
	liveFlag bool
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "papertrader",
	Short: "A spot-trading simulator with mock and exchange-testnet backends",
	Long: `Papertrader simulates spot trading for educational purposes.

It lets you:
  - Query current prices from a deterministic mock feed or an exchange testnet
  - Hold a virtual balance and place simulated buy/sell market orders
  - Size positions with a risk-based calculator
  - Serve a live portfolio dashboard over HTTP

No real funds are ever at risk. Live mode talks only to exchange
test networks and requires API credentials from the environment:
BINANCE_API_KEY/BINANCE_API_SECRET or BYBIT_API_KEY/BYBIT_API_SECRET.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to YAML config (defaults apply when unset)")
	rootCmd.PersistentFlags().BoolVar(&liveFlag, "live", false, "use the exchange testnet backend instead of mock")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "structured logs to stderr")
}

func loadConfig() (config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.Load(cfgFile)
}

func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// credentialsFromEnv reads the API key pair for the platform. An empty pair
// is returned when the variables are unset; the engine turns that into a
// credential error on live switch.
func credentialsFromEnv(platform string) domain.Credentials {
	switch platform {
	case "bybit":
		return domain.Credentials{
			APIKey:    os.Getenv("BYBIT_API_KEY"),
			APISecret: os.Getenv("BYBIT_API_SECRET"),
		}
	default:
		return domain.Credentials{
			APIKey:    os.Getenv("BINANCE_API_KEY"),
			APISecret: os.Getenv("BINANCE_API_SECRET"),
		}
	}
}

// newEngine builds the engine from config and flags. The --live flag and a
// live mode in the config both switch the engine to the testnet backend.
func newEngine(logger *zap.Logger) (*engine.Engine, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	e, err := engine.New(cfg, logger)
	if err != nil {
		return nil, err
	}

	if liveFlag || cfg.Mode == domain.ModeLive {
		creds := credentialsFromEnv(cfg.Platform)
		if err := e.SetMode(domain.ModeLive, creds); err != nil {
			e.Close()
			return nil, err
		}
	}

	return e, nil
}
