package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/klogins-hash/collectiv-intelligence/internal/api"
	"github.com/klogins-hash/collectiv-intelligence/internal/benchmark"
	"github.com/klogins-hash/collectiv-intelligence/internal/config"
	"github.com/klogins-hash/collectiv-intelligence/internal/hermes"
	"github.com/klogins-hash/collectiv-intelligence/internal/logging"
	"github.com/klogins-hash/collectiv-intelligence/internal/metrics"
	"github.com/klogins-hash/collectiv-intelligence/internal/report"
	"github.com/klogins-hash/collectiv-intelligence/internal/scoring"
	"github.com/klogins-hash/collectiv-intelligence/internal/store"
)

const (
	connectTimeout  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "alignment: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("alignment", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format, stderr)

	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	m := metrics.New()

	// Score and classify everything before the first byte of output.
	scorer := scoring.NewScorer(logger)
	if err := benchmark.Load(scorer, benchmark.Entities()); err != nil {
		return err
	}
	rep, err := report.Build(scorer.Entities())
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}

	if err := rep.Write(stdout, format); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	m.Observe(rep)
	logger.Info("report generated", "report_id", rep.ID, "entities", len(rep.Rows))

	st := openStore(ctx, cfg.Database.URL, logger)
	defer st.Close()
	if err := st.SaveReport(ctx, rep); err != nil {
		logger.Warn("failed to save report", "report_id", rep.ID, "error", err)
	}

	if cfg.Hermes.URL != "" {
		publishReport(ctx, cfg.Hermes.URL, rep, logger)
	}

	if !cfg.Server.Enabled() {
		return nil
	}
	return serve(ctx, cfg.Server, rep, st, m, logger)
}

// openStore returns a Postgres store when configured and reachable,
// otherwise an in-memory one.
func openStore(ctx context.Context, databaseURL string, logger *slog.Logger) store.Store {
	if databaseURL == "" {
		return store.NewMemoryStore()
	}

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	db, err := store.NewPostgresStore(connectCtx, databaseURL)
	if err != nil {
		logger.Warn("failed to connect to database, keeping reports in memory", "error", err)
		return store.NewMemoryStore()
	}
	logger.Info("connected to database")
	return db
}

func publishReport(ctx context.Context, url string, rep *report.Report, logger *slog.Logger) {
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	hc, err := hermes.NewNATSClient(connectCtx, url, logger)
	if err != nil {
		logger.Warn("failed to connect to hermes, skipping events", "error", err)
		return
	}
	defer hc.Close()

	if err := hermes.PublishReport(hc, rep); err != nil {
		logger.Warn("failed to publish report", "report_id", rep.ID, "error", err)
		return
	}
	logger.Info("report published", "report_id", rep.ID)
}

func serve(ctx context.Context, cfg config.ServerConfig, rep *report.Report, st store.Store, m *metrics.Metrics, logger *slog.Logger) error {
	router := api.NewRouter(rep, st, logger)
	metricsRouter := api.NewMetricsRouter(m.Registry)

	var servers []*http.Server
	if cfg.MetricsPort > 0 && cfg.MetricsPort != cfg.Port {
		servers = append(servers,
			&http.Server{Addr: fmt.Sprintf(":%d", cfg.Port), Handler: router},
			&http.Server{Addr: fmt.Sprintf(":%d", cfg.MetricsPort), Handler: metricsRouter},
		)
	} else {
		mux := http.NewServeMux()
		mux.Handle("/api/", router)
		mux.Handle("/", metricsRouter)
		servers = append(servers, &http.Server{Addr: fmt.Sprintf(":%d", cfg.Port), Handler: mux})
	}

	errCh := make(chan error, len(servers))
	for _, srv := range servers {
		go func(srv *http.Server) {
			logger.Info("server starting", "addr", srv.Addr)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("server %s: %w", srv.Addr, err)
			}
		}(srv)
	}

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("shutting down...")
	case serveErr = <-errCh:
		logger.Error("server error", "error", serveErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for _, srv := range servers {
		_ = srv.Shutdown(shutdownCtx)
	}

	logger.Info("shutdown complete")
	return serveErr
}
