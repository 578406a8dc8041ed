package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"coretypes/internal/platform/config"
	"coretypes/internal/platform/httpserver"
	"coretypes/internal/platform/logger"
	platformmetrics "coretypes/internal/platform/metrics"
	"coretypes/internal/refinement"
	"coretypes/internal/refinement/handler"
	refinementmetrics "coretypes/internal/refinement/metrics"
	"coretypes/pkg/domain"
	"coretypes/pkg/platform/middleware/requestid"
	"coretypes/pkg/platform/middleware/requesttime"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Refinement logic lives in internal/refinement.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	var (
		reg     = prometheus.NewRegistry()
		httpMet *platformmetrics.Metrics
		refMet  *refinementmetrics.Metrics
	)
	if cfg.MetricsEnabled {
		httpMet = platformmetrics.New(reg)
		refMet = refinementmetrics.New(reg)
	}

	uuids := domain.NewUUIDGenerator(nil)
	svc, err := refinement.New(refinement.NewCatalog(),
		refinement.WithLogger(log),
		refinement.WithMetrics(refMet),
		refinement.WithUUIDGenerator(uuids),
		refinement.WithBatchLimit(cfg.BatchLimit),
	)
	if err != nil {
		log.Error("failed to build refinement service", "error", err)
		os.Exit(1)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware(uuids))
	r.Use(requesttime.Middleware(nil))
	if httpMet != nil {
		r.Use(httpMet.Middleware)
		r.Handle("/metrics", platformmetrics.Handler(reg))
	}
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler.New(svc, log).Register(r)

	srv := httpserver.New(cfg.Addr, r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting coretypes server", "addr", cfg.Addr, "metrics", cfg.MetricsEnabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down", "timeout", cfg.ShutdownTimeout)
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}
