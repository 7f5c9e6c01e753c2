package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"ara/internal/catalog"
	httpapi "ara/internal/http"
	"ara/internal/platform/config"
	"ara/internal/platform/httpserver"
	"ara/internal/platform/logger"
	"ara/internal/platform/metrics"
	"ara/internal/platform/telemetry"
)

func serveCmd() *cobra.Command {
	var (
		addr        string
		metricsAddr string
		catalogDir  string
		strict      bool
		reqTimeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("addr") {
				cfg.Addr = addr
			}
			if flags.Changed("metrics-addr") {
				cfg.MetricsAddr = metricsAddr
			}
			if flags.Changed("catalog-dir") {
				cfg.CatalogDir = catalogDir
			}
			if flags.Changed("strict-filters") {
				cfg.StrictFilters = strict
			}
			if flags.Changed("request-timeout") {
				cfg.RequestTimeout = reqTimeout
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "API listen address (ARA_ADDR)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "separate metrics listen address (ARA_METRICS_ADDR)")
	cmd.Flags().StringVar(&catalogDir, "catalog-dir", "", "load datasets from this directory instead of the embedded copy (ARA_CATALOG_DIR)")
	cmd.Flags().BoolVar(&strict, "strict-filters", false, "reject malformed filter values with 400 instead of matching nothing (ARA_STRICT_FILTERS)")
	cmd.Flags().DurationVar(&reqTimeout, "request-timeout", config.DefaultRequestTimeout, "per-request deadline, 0 disables (ARA_REQUEST_TIMEOUT)")
	return cmd
}

// serve runs the API listener, and the metrics listener when configured,
// until ctx is cancelled or either listener fails.
func serve(ctx context.Context, cfg config.Server) error {
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	slog.SetDefault(log)

	cat, err := loadCatalog(cfg.CatalogDir)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	_, shutdownTracing, err := telemetry.Init(ctx, cfg.Telemetry, log)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Warn("tracer shutdown failed", "error", err.Error())
		}
	}()

	reg := metrics.NewRegistry()
	api, err := httpapi.New(cat, httpapi.Config{
		StrictFilters:  cfg.StrictFilters,
		CacheMaxAge:    cfg.CacheMaxAge,
		SiteURL:        cfg.SiteURL,
		CORSOrigins:    cfg.CORSOrigins,
		ServiceName:    cfg.Telemetry.ServiceName,
		ServeMetrics:   cfg.MetricsAddr == "",
		RequestTimeout: cfg.RequestTimeout,
	}, log, reg)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting ara-api", "addr", cfg.Addr, "version", Version)
		return httpserver.Run(gctx, httpserver.New(cfg.Addr, api.Handler), cfg.ShutdownTimeout)
	})
	if cfg.MetricsAddr != "" {
		g.Go(func() error {
			log.Info("starting metrics listener", "addr", cfg.MetricsAddr)
			return httpserver.Run(gctx, httpserver.New(cfg.MetricsAddr, api.Metrics.Handler()), cfg.ShutdownTimeout)
		})
	}

	err = g.Wait()
	log.Info("ara-api stopped")
	return err
}

func loadCatalog(dir string) (*catalog.Catalog, error) {
	if dir == "" {
		return catalog.LoadEmbedded()
	}
	return catalog.LoadDir(dir)
}
