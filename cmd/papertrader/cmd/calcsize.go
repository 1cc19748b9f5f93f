package cmd

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/domain"
	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/engine"
)

var (
	csRisk   float64
	csStop   string
	csEntry  string
	csEquity string
)

var calcSizeCmd = &cobra.Command{
	Use:   "calc-size <pair>",
	Short: "Compute position size from equity, stop distance and risk fraction",
	Long: `Calc-size answers "how much can I buy so that a stop-out loses at most
the given fraction of my equity".

Entry defaults to the current price and equity to the free quote-asset
balance, so the short form only needs a stop:

  papertrader calc-size BTC_USDT --stop 66000 --risk 0.02`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		defer logger.Sync()

		pair, err := domain.PairFromString(args[0])
		if err != nil {
			return err
		}

		e, err := newEngine(logger)
		if err != nil {
			return err
		}
		defer e.Close()

		sized, err := resolveSize(cmd.Context(), e, pair)
		if err != nil {
			return err
		}

		fmt.Printf("pair: %s\n", pair)
		fmt.Printf("entry: %s\n", sized.entry)
		fmt.Printf("stop: %s\n", sized.stop)
		fmt.Printf("equity: %s\n", sized.equity)
		fmt.Printf("risk fraction: %s\n", sized.risk)
		fmt.Printf("quantity: %s\n", sized.qty)
		return nil
	},
}

type sizing struct {
	entry, stop, equity, risk, qty decimal.Decimal
}

// resolveSize fills the optional sizing inputs from the engine: entry from
// the current price, equity from the free quote balance.
func resolveSize(ctx context.Context, e *engine.Engine, pair domain.Pair) (sizing, error) {
	var s sizing
	var err error

	s.risk = decimal.NewFromFloat(csRisk)

	s.stop, err = decimal.NewFromString(csStop)
	if err != nil {
		return sizing{}, fmt.Errorf("%w: stop %q is not a decimal", domain.ErrInvalidRisk, csStop)
	}

	if csEntry != "" {
		s.entry, err = decimal.NewFromString(csEntry)
		if err != nil {
			return sizing{}, fmt.Errorf("%w: entry %q is not a decimal", domain.ErrInvalidRisk, csEntry)
		}
	} else {
		s.entry, err = e.GetPrice(ctx, pair)
		if err != nil {
			return sizing{}, err
		}
	}

	if csEquity != "" {
		s.equity, err = decimal.NewFromString(csEquity)
		if err != nil {
			return sizing{}, fmt.Errorf("%w: equity %q is not a decimal", domain.ErrInvalidRisk, csEquity)
		}
	} else {
		balances, err := e.GetBalance(ctx)
		if err != nil {
			return sizing{}, err
		}
		s.equity = balances.Get(pair.To)
	}

	s.qty, err = e.ComputeSize(pair, s.equity, s.entry, s.stop, s.risk)
	if err != nil {
		return sizing{}, err
	}
	return s, nil
}

func init() {
	rootCmd.AddCommand(calcSizeCmd)

	calcSizeCmd.Flags().Float64Var(&csRisk, "risk", 0.02, "fraction of equity to risk (0.02 = 2%)")
	calcSizeCmd.Flags().StringVar(&csStop, "stop", "", "stop price (required)")
	calcSizeCmd.Flags().StringVar(&csEntry, "entry", "", "entry price (default: current price)")
	calcSizeCmd.Flags().StringVar(&csEquity, "equity", "", "equity in the quote asset (default: free quote balance)")

	calcSizeCmd.MarkFlagRequired("stop")
}
