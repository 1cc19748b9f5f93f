package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/domain"
)

var buyCmd = &cobra.Command{
	Use:   "buy <pair> <quantity>",
	Short: "Place a simulated market buy, e.g. buy BTC_USDT 0.05",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return placeOrder(cmd, args[0], args[1], domain.SideBuy)
	},
}

var sellCmd = &cobra.Command{
	Use:   "sell <pair> <quantity>",
	Short: "Place a simulated market sell, e.g. sell BTC_USDT 0.05",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return placeOrder(cmd, args[0], args[1], domain.SideSell)
	},
}

func placeOrder(cmd *cobra.Command, pairArg, qtyArg string, side domain.Side) error {
	logger := newLogger()
	defer logger.Sync()

	pair, err := domain.PairFromString(pairArg)
	if err != nil {
		return err
	}
	qty, err := decimal.NewFromString(qtyArg)
	if err != nil {
		return fmt.Errorf("%w: quantity %q is not a decimal", domain.ErrInvalidOrder, qtyArg)
	}

	e, err := newEngine(logger)
	if err != nil {
		return err
	}
	defer e.Close()

	record, err := e.PlaceOrder(cmd.Context(), domain.Order{
		Pair:     pair,
		Side:     side,
		Quantity: qty,
	})
	if err != nil {
		return err
	}

	fmt.Printf("filled: %s\n", record)
	fmt.Printf("order id: %s\n", record.ID)
	return nil
}

func init() {
	rootCmd.AddCommand(buyCmd)
	rootCmd.AddCommand(sellCmd)
}
