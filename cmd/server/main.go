package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"

	"lookupdesk/internal/gateway"
	"lookupdesk/internal/lookup/handler"
	"lookupdesk/internal/lookup/service"
	"lookupdesk/internal/lookup/store/cache"
	"lookupdesk/internal/lookup/store/history"
	"lookupdesk/internal/platform/config"
	"lookupdesk/internal/platform/httpserver"
	"lookupdesk/internal/platform/logger"
	"lookupdesk/internal/platform/metrics"
	"lookupdesk/internal/platform/tracing"
)

// main wires storage, the lookup service and the HTTP router, then runs the
// server until SIGINT or SIGTERM.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("lookupdesk stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	m := metrics.New()

	tp, err := tracing.New(cfg.Tracing, os.Stderr)
	if err != nil {
		return err
	}
	otel.SetTracerProvider(tp)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warn("tracer shutdown failed", "error", err)
		}
	}()

	backend, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer backend.close()

	cacheStore := cache.New(backend.store,
		cache.WithTTL(cfg.Lookup.CacheTTL),
		cache.WithLogger(log),
		cache.WithMetrics(m),
	)
	historyLog := history.New(backend.store,
		history.WithLimit(cfg.Lookup.HistoryLimit),
		history.WithLogger(log),
		history.WithMetrics(m),
	)
	fetcher := gateway.New(
		gateway.WithTimeout(cfg.Lookup.FetchTimeout),
		gateway.WithLogger(log),
		gateway.WithMetrics(m),
		gateway.WithTracerProvider(tp),
	)

	lookups, err := service.New(cacheStore, historyLog, fetcher,
		service.WithLogger(log),
		service.WithMetrics(m),
		service.WithEndpoints(service.Endpoints{
			Phone:      cfg.Lookup.PhoneURL,
			Vehicle:    cfg.Lookup.VehicleURL,
			NationalID: cfg.Lookup.NationalIDURL,
			Relay:      cfg.Lookup.RelayURL,
		}),
	)
	if err != nil {
		return err
	}

	router := chi.NewRouter()
	router.Handle("/metrics", promhttp.Handler())
	handler.New(lookups, historyLog, log, m,
		handler.WithHealthChecker(backend.health),
		handler.WithTimeout(cfg.Lookup.FetchTimeout+5*time.Second),
	).Register(router)

	srv := httpserver.New(cfg.Addr, router, cfg.Lookup.FetchTimeout)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting lookupdesk",
			"addr", cfg.Addr,
			"storage", cfg.Storage.Backend,
			"trace_exporter", cfg.Tracing.Exporter,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
