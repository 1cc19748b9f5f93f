package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/setup"
)

var setupOut string

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive wizard that writes a YAML config",
	RunE: func(cmd *cobra.Command, args []string) error {
		return setup.RunTUI(setupOut)
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().StringVarP(&setupOut, "out", "o", "papertrader.yaml", "where to write the config")
}
