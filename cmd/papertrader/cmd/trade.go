package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/domain"
)

var (
	trRisk float64
	trStop string
	trRR   float64
	trSell bool
)

var tradeCmd = &cobra.Command{
	Use:   "trade <pair>",
	Short: "Size a position by risk, fill it, and print the stop/target levels",
	Long: `Trade chains the sizing calculator and a market order: it computes the
quantity from the current price, the stop and the risk fraction, places
the order, and prints the stop-loss and take-profit levels to watch.

The levels are informational only; the simulator does not track resting
orders.

  papertrader trade BTC_USDT --stop 66000 --risk 0.01 --rr 2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		defer logger.Sync()

		pair, err := domain.PairFromString(args[0])
		if err != nil {
			return err
		}
		stop, err := decimal.NewFromString(trStop)
		if err != nil {
			return fmt.Errorf("%w: stop %q is not a decimal", domain.ErrInvalidRisk, trStop)
		}

		e, err := newEngine(logger)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()

		entry, err := e.GetPrice(ctx, pair)
		if err != nil {
			return err
		}
		balances, err := e.GetBalance(ctx)
		if err != nil {
			return err
		}
		equity := balances.Get(pair.To)

		qty, err := e.ComputeSize(pair, equity, entry, stop, decimal.NewFromFloat(trRisk))
		if err != nil {
			return err
		}

		side := domain.SideBuy
		if trSell {
			side = domain.SideSell
		}

		record, err := e.PlaceOrder(ctx, domain.Order{
			Pair:     pair,
			Side:     side,
			Quantity: qty,
		})
		if err != nil {
			return err
		}

		// target sits rr times the stop distance on the profit side
		risk := record.Price.Sub(stop)
		target := record.Price.Add(risk.Mul(decimal.NewFromFloat(trRR)))

		fmt.Printf("filled: %s\n", record)
		fmt.Printf("order id: %s\n", record.ID)
		fmt.Printf("stop-loss: %s\n", stop)
		fmt.Printf("take-profit: %s\n", target)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tradeCmd)

	tradeCmd.Flags().Float64Var(&trRisk, "risk", 0.02, "fraction of equity to risk (0.02 = 2%)")
	tradeCmd.Flags().StringVar(&trStop, "stop", "", "stop price (required)")
	tradeCmd.Flags().Float64Var(&trRR, "rr", 2.0, "take profit as a multiple of the stop distance")
	tradeCmd.Flags().BoolVar(&trSell, "sell", false, "sell instead of buy")

	tradeCmd.MarkFlagRequired("stop")
}
