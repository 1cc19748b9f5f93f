package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/web"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio dashboard over HTTP",
	Long: `Serve starts the dashboard: an HTML page, JSON endpoints for portfolio,
prices and trades, and an SSE stream of portfolio snapshots journaled at
the configured interval.

When tls_domains is set in the config, certificates are obtained
automatically and the server listens on :443.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		defer logger.Sync()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		e, err := newEngine(logger)
		if err != nil {
			return err
		}
		defer e.Close()

		addr := cfg.ListenAddr
		if serveAddr != "" {
			addr = serveAddr
		}

		srv := web.NewServer(addr, e, nil)
		if store := e.SnapshotStore(); store != nil {
			srv = web.NewServer(addr, e, store)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		interval := cfg.SnapshotInterval
		if interval <= 0 {
			interval = 5 * time.Second
		}
		go journalLoop(ctx, e, interval, logger)

		fmt.Printf("dashboard listening on %s\n", addr)
		if len(cfg.TLSDomains) > 0 {
			return srv.StartWithAutoTLS(ctx, cfg.TLSDomains, "certs")
		}
		return srv.Start(ctx)
	},
}

type journaler interface {
	JournalSnapshot(ctx context.Context) error
}

func journalLoop(ctx context.Context, e journaler, interval time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := e.JournalSnapshot(ctx); err != nil {
				logger.Warn("snapshot journaling failed", zap.Error(err))
			}
		}
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
}
