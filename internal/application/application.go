// Package application assembles the deal finder from configuration and runs
// its servers until the context is canceled.
package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"dealfinder/api"
	"dealfinder/internal/config"
	"dealfinder/internal/domain/service/deal"
	"dealfinder/internal/domain/service/scoring"
	"dealfinder/internal/domain/service/source"
	"dealfinder/internal/server"
	"dealfinder/pkg/application/modules"
	"dealfinder/pkg/contextx"
	"dealfinder/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// NewDealService builds the search pipeline: generator, optional cache,
// scorer. Metrics may be nil.
func NewDealService(cfg config.Config, metrics *deal.Metrics) *deal.Service {
	generator := source.NewGenerator()
	if cfg.Source.Seed != 0 {
		generator = generator.WithSeed(cfg.Source.Seed)
	}

	var listingSource deal.ListingSource = generator
	if cfg.Source.CacheTTL > 0 {
		listingSource = source.NewCached(generator, cfg.Source.CacheTTL, cfg.Source.CacheCleanupInterval)
	}

	scorer := scoring.NewScorer().
		WithLimit(cfg.Scoring.Limit).
		WithURLFactory(scoring.ItemURL(cfg.Scoring.ItemBaseURL))

	return deal.NewService(listingSource, scorer).WithMetrics(metrics)
}

// NewHandler returns the API router with the full middleware chain.
func NewHandler(cfg config.Config, dealService *deal.Service) (http.Handler, error) {
	docsServer, err := server.NewDocsServer(api.Spec)
	if err != nil {
		return nil, fmt.Errorf("server.NewDocsServer: %w", err)
	}

	var masker logx.SensitiveDataMaskerInterface = logx.NewNopSensitiveDataMasker()
	if cfg.HTTP.MaskSensitiveData {
		masker = logx.NewSensitiveDataMasker()
	}

	return server.NewRouter(
		server.NewServer(server.NewDealServer(dealService), docsServer),
		server.RouterOptions{
			SensitiveDataMasker: masker,
			LogFieldMaxLen:      cfg.HTTP.LogFieldMaxLen,
		},
	), nil
}

func Run(ctx context.Context, cfg config.Config) error {
	ctx = contextx.WithLogger(ctx, logger(ctx).With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	))

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	handler, err := NewHandler(cfg, NewDealService(cfg, deal.NewMetrics(registry)))
	if err != nil {
		return fmt.Errorf("NewHandler: %w", err)
	}

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           handler,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	var ready atomic.Bool

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
		OnListen:        func() { ready.Store(true) },
	}.Run(ctx, g, httpServer)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
		Ready:         ready.Load,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
		Gatherer:      registry,
	}.Run(ctx, g)

	logger(ctx).Info("application started")

	if err := g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	logger(ctx).Info("application stopped")

	return nil
}
