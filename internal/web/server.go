// Package web serves the portfolio dashboard: a static page, JSON snapshots
// and an SSE stream fed by the snapshot journal. Presentation only; all
// trading semantics live behind the engine.
package web

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"golang.org/x/crypto/acme/autocert"

	"github.com/Donatusodoemenechinecheremchimobim/binance-portfolio-demo/internal/domain"
)

const (
	snapshotPollInterval = 2 * time.Second
	// streamBackfillLimit caps how much history a fresh connection replays.
	streamBackfillLimit = 50
)

type portfolioReader interface {
	Portfolio(ctx context.Context) (domain.PortfolioSnapshot, error)
	ListPrices(ctx context.Context) ([]domain.Quote, error)
	Trades() []domain.TradeRecord
}

type snapshotReader interface {
	Latest(n int) ([]domain.PortfolioSnapshotRecord, error)
	SnapshotsAfter(index uint64) ([]domain.PortfolioSnapshotRecord, error)
}

// Server exposes HTTP endpoints serving the HTML UI, JSON views and an SSE stream.
type Server struct {
	Addr   string
	Engine portfolioReader
	Store  snapshotReader
}

// NewServer creates a new dashboard server. Store may be nil when snapshot
// journaling is disabled; the stream endpoint then reports unavailable.
func NewServer(addr string, engine portfolioReader, store snapshotReader) *Server {
	return &Server{Addr: addr, Engine: engine, Store: store}
}

func (s *Server) mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/portfolio", s.handlePortfolio)
	mux.HandleFunc("/api/prices", s.handlePrices)
	mux.HandleFunc("/api/trades", s.handleTrades)
	mux.HandleFunc("/portfolio/stream", s.handlePortfolioStream)
	return mux
}

// Start runs the HTTP server (blocking) and shuts it down when ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	server := &http.Server{
		Addr:              s.Addr,
		Handler:           s.mux(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// StartWithAutoTLS runs an HTTPS server with automatic certificates via ACME
// and an HTTP server on port 80 for the HTTP-01 challenge.
func (s *Server) StartWithAutoTLS(ctx context.Context, domains []string, cacheDir string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(domains) == 0 {
		return fmt.Errorf("no domains provided for automatic TLS")
	}
	if cacheDir == "" {
		cacheDir = "cert-cache"
	}

	manager := &autocert.Manager{
		Prompt:     autocert.AcceptTOS,
		HostPolicy: autocert.HostWhitelist(domains...),
		Cache:      autocert.DirCache(cacheDir),
	}

	server := &http.Server{
		Addr:              ":443",
		Handler:           s.mux(),
		ReadHeaderTimeout: 5 * time.Second,
		TLSConfig:         &tls.Config{GetCertificate: manager.GetCertificate},
	}

	challengeServer := &http.Server{
		Addr:              ":80",
		Handler:           manager.HTTPHandler(nil),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := challengeServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("ACME challenge server: %v", err)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		_ = challengeServer.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServeTLS("", ""); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexHTML)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.Engine.Portfolio(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	s.writeJSON(w, snapshot)
}

func (s *Server) handlePrices(w http.ResponseWriter, r *http.Request) {
	quotes, err := s.Engine.ListPrices(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	type quoteView struct {
		Pair  string `json:"pair"`
		Price string `json:"price"`
	}
	views := make([]quoteView, 0, len(quotes))
	for _, q := range quotes {
		views = append(views, quoteView{Pair: q.Pair.String(), Price: q.Price.String()})
	}
	s.writeJSON(w, views)
}

func (s *Server) handleTrades(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.Engine.Trades())
}

func (s *Server) handlePortfolioStream(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(w, "snapshot journal not available")
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	// comment heartbeat so proxies keep the connection open
	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	pollTicker := time.NewTicker(snapshotPollInterval)
	defer pollTicker.Stop()

	lastIndex := uint64(0)
	sendRecords := func(records []domain.PortfolioSnapshotRecord) error {
		for _, record := range records {
			payload, err := json.Marshal(record.Snapshot)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "event: portfolio\n")
			fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()
			lastIndex = record.Index
		}
		return nil
	}
	sendSnapshots := func() error {
		records, err := s.Store.SnapshotsAfter(lastIndex)
		if err != nil {
			return err
		}
		return sendRecords(records)
	}

	// seed the chart with recent history, then tail the journal
	backfill, err := s.Store.Latest(streamBackfillLimit)
	if err != nil {
		http.Error(w, "failed to load snapshots", http.StatusInternalServerError)
		log.Printf("portfolio stream backfill: %v", err)
		return
	}
	if err := sendRecords(backfill); err != nil {
		log.Printf("portfolio stream backfill send: %v", err)
		return
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			fmt.Fprintf(w, ": ping\n\n")
			flusher.Flush()
		case <-pollTicker.C:
			if err := sendSnapshots(); err != nil {
				log.Printf("portfolio stream poll err: %v", err)
			}
		}
	}
}
