package main

import (
	"os"

	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/cmd/papertrader/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
