package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"PrecoMateriais/internal/catalog"
	"PrecoMateriais/internal/config"
	"PrecoMateriais/internal/pricing"
	"PrecoMateriais/pkg/kit"
)

func main() {
	service := "precos"

	cfg, err := config.Load()
	if err != nil {
		kit.NewLogger(service, "").Fatal("invalid configuration", zap.Error(err))
	}

	log := kit.NewLogger(service, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()

	cat := catalog.New(catalog.Deps{
		Fetcher: catalog.NewHTTPFetcher(cfg.FetchTimeout),
		Log:     log,
		Metrics: catalog.NewMetrics(reg),
	})

	// A missing or unreachable sheet is not fatal: the service starts empty
	// and can be filled later through POST /reload.
	if _, err := cat.Load(ctx, cfg.SourceURL); err != nil && !errors.Is(err, catalog.ErrNotConfigured) {
		log.Warn("starting with empty catalog", zap.Error(err))
	}

	if cfg.RefreshInterval > 0 {
		log.Info("catalog refresher enabled", zap.Duration("every", cfg.RefreshInterval))
		go cat.RunRefresher(ctx, cfg.SourceURL, cfg.RefreshInterval)
	}

	s := &pricing.Server{
		Catalog:       cat,
		Pricing:       &pricing.Service{Catalog: cat},
		SourceURL:     cfg.SourceURL,
		Log:           log,
		ReloadLimiter: kit.NewIPRateLimiter(cfg.ReloadLimitPerMin, time.Minute),
	}

	h := pricing.NewHandler(s, pricing.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: cfg.MetricsEnabled,
		MetricsToken:   cfg.MetricsToken,
		CORSOrigins:    cfg.CORSOrigins,
		TrustProxy:     cfg.TrustProxy,
	})

	if err := kit.RunHTTPServer(ctx, cfg.Addr(), h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
