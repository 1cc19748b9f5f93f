package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/domain"
)

var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "List current prices for the configured watch list",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		defer logger.Sync()

		e, err := newEngine(logger)
		if err != nil {
			return err
		}
		defer e.Close()

		quotes, err := e.ListPrices(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "PAIR\tPRICE\tMODE\n")
		for _, q := range quotes {
			fmt.Fprintf(w, "%s\t%s\t%s\n", q.Pair, q.Price, e.Mode())
		}
		return w.Flush()
	},
}

var priceCmd = &cobra.Command{
	Use:   "price <pair>",
	Short: "Print the current price for one pair, e.g. BTC_USDT",
	Args:  cobra.ExactArgs(1),
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

		price, err := e.GetPrice(cmd.Context(), pair)
		if err != nil {
			return err
		}

		fmt.Printf("%s %s\n", pair, price)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pricesCmd)
	rootCmd.AddCommand(priceCmd)
}
