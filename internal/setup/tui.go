// Package setup implements the interactive terminal configuration wizard.
package setup

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/config"
	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/domain"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#33FF9C"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(highlight).
			Padding(1, 2).
			Bold(true).
			MarginBottom(1)

	stepStyle = lipgloss.NewStyle().
			Foreground(highlight).
			Bold(true).
			MarginTop(1)
)

func clearScreen() {
	fmt.Print("\033[H\033[2J")
}

func header(step string) {
	clearScreen()
	fmt.Println(headerStyle.Render("PAPERTRADER CONFIG WIZARD"))
	fmt.Println(stepStyle.Render(step))
}

// RunTUI launches the terminal configuration wizard and writes the resulting
// YAML config to path. API credentials are intentionally not asked for: they
// stay in the environment.
func RunTUI(path string) error {
	cfg := config.Default()

	var (
		mode       string
		platform   string
		liveOrders bool
		dataDir    = cfg.DataDir
		listenAddr = cfg.ListenAddr
		stepStr    = cfg.QuantityStep.String()
		confirm    bool
	)

	clearScreen()
	fmt.Println(headerStyle.Render("PAPERTRADER CONFIG WIZARD"))
	fmt.Println(lipgloss.NewStyle().Foreground(subtle).Render("Simulated spot trading, no real funds at risk.\n"))

	header("STEP 1: MODE")
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose the default backend").
				Options(
					huh.NewOption("Mock (offline fixtures)", string(domain.ModeMock)),
					huh.NewOption("Live (exchange testnet)", string(domain.ModeLive)),
				).
				Value(&mode),
		),
	).Run()
	if err != nil {
		return err
	}

	platform = cfg.Platform
	if mode == string(domain.ModeLive) {
		header("STEP 2: PLATFORM")
		err = huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Select exchange test network").
					Options(
						huh.NewOption("Binance testnet", "binance"),
						huh.NewOption("Bybit testnet", "bybit"),
					).
					Value(&platform),
				huh.NewConfirm().
					Title("Allow real testnet order placement?").
					Description("Off means live mode is read-only (prices and balances).").
					Value(&liveOrders),
			),
		).Run()
		if err != nil {
			return err
		}
	}

	header("STEP 3: PATHS AND LIMITS")
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Fixture data directory").
				Value(&dataDir),
			huh.NewInput().
				Title("Dashboard listen address").
				Value(&listenAddr),
			huh.NewInput().
				Title("Default quantity step").
				Description("Minimum tradable increment, e.g. 0.000001").
				Validate(func(s string) error {
					step, err := decimal.NewFromString(s)
					if err != nil || step.LessThanOrEqual(decimal.Zero) {
						return fmt.Errorf("must be a positive decimal")
					}
					return nil
				}).
				Value(&stepStr),
		),
	).Run()
	if err != nil {
		return err
	}

	header("STEP 4: CONFIRM")
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Write config to %s?", path)).
				Value(&confirm),
		),
	).Run()
	if err != nil {
		return err
	}
	if !confirm {
		return fmt.Errorf("setup cancelled")
	}

	parsedMode, err := domain.ModeFromString(mode)
	if err != nil {
		return err
	}
	step, err := decimal.NewFromString(stepStr)
	if err != nil {
		return err
	}

	cfg.Mode = parsedMode
	cfg.Platform = platform
	cfg.LiveOrders = liveOrders
	cfg.DataDir = dataDir
	cfg.ListenAddr = listenAddr
	cfg.QuantityStep = step
	cfg.SnapshotInterval = 5 * time.Second

	if err := cfg.Save(path); err != nil {
		return err
	}

	fmt.Println(stepStyle.Render("\nConfig written. Run `papertrader prices` to get started."))
	if parsedMode == domain.ModeLive {
		fmt.Println(lipgloss.NewStyle().Foreground(subtle).Render(
			"Set BINANCE_API_KEY/BINANCE_API_SECRET (or BYBIT_*) before running in live mode."))
	}
	return nil
}
