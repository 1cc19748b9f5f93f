package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Print current holdings per asset",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		defer logger.Sync()

		e, err := newEngine(logger)
		if err != nil {
			return err
		}
		defer e.Close()

		balances, err := e.GetBalance(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "ASSET\tQUANTITY\n")
		for _, asset := range balances.Assets() {
			fmt.Fprintf(w, "%s\t%s\n", asset, balances.Get(asset))
		}
		return w.Flush()
	},
}

var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Print holdings valued at current prices",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		defer logger.Sync()

		e, err := newEngine(logger)
		if err != nil {
			return err
		}
		defer e.Close()

		snapshot, err := e.Portfolio(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "ASSET\tQUANTITY\tPRICE\tVALUE (%s)\n", snapshot.Quote)
		for _, a := range snapshot.Assets {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.Asset, a.Quantity, a.Price, a.Value)
		}
		fmt.Fprintf(w, "TOTAL\t\t\t%s\n", snapshot.Total)
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("\nmode: %s\n", snapshot.Mode)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(portfolioCmd)
}
