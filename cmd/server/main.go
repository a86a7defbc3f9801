package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"insightboard/internal/bootstrap"
	"insightboard/internal/insight/handler"
	insightmetrics "insightboard/internal/insight/metrics"
	"insightboard/internal/insight/service"
	"insightboard/internal/platform/config"
	"insightboard/internal/platform/httpserver"
	"insightboard/internal/platform/logger"
	"insightboard/internal/platform/metrics"
	httptransport "insightboard/internal/transport/http"
)

const shutdownTimeout = 10 * time.Second

// main wires configuration, the record store, the optional view cache and
// the HTTP surface, then serves until SIGINT or SIGTERM.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("INSIGHTS_CONFIG"))
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, closeStore, err := bootstrap.OpenStore(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = closeStore(context.Background()) }()

	viewCache, closeCache, err := bootstrap.OpenCache(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer func() { _ = closeCache(context.Background()) }()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	insightMetrics := insightmetrics.New(reg)
	if n, err := st.Count(ctx); err != nil {
		log.Warn("failed to count records", "error", err)
	} else {
		insightMetrics.SetRecordsLoaded(n)
	}

	opts := []service.Option{
		service.WithLogger(log),
		service.WithMetrics(insightMetrics),
	}
	if viewCache != nil {
		opts = append(opts, service.WithCache(viewCache, cfg.Cache.TTL))
	}
	svc := service.New(st, opts...)

	router := httptransport.NewRouter(httptransport.Config{
		Logger:         log,
		Metrics:        metrics.New(reg),
		Gatherer:       reg,
		Health:         svc,
		RequestTimeout: cfg.RequestTimeout,
		RateLimitRPS:   cfg.RateLimit.RPS,
		RateLimitBurst: cfg.RateLimit.Burst,
	}, handler.New(svc, log))

	srv := httpserver.New(cfg.Addr, router, cfg.RequestTimeout)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting insightboard",
			"addr", cfg.Addr,
			"store", cfg.Store.Driver,
			"cache", cfg.Cache.Driver,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})
	return g.Wait()
}
