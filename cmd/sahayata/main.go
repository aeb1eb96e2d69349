package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/sahayata/internal/config"
	logpkg "github.com/kailas-cloud/sahayata/internal/logger"
	"github.com/kailas-cloud/sahayata/internal/metrics"
	"github.com/kailas-cloud/sahayata/internal/setup"
	chiTransport "github.com/kailas-cloud/sahayata/internal/transport/chi"
	"github.com/kailas-cloud/sahayata/internal/version"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		panic("failed to load .env: " + err.Error())
	}
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting sahayata API server",
		zap.String("build", version.String()),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("catalog_driver", cfg.Catalog.Driver),
	)

	metrics.RegisterDomainMetrics()
	metrics.RegisterHTTPMetrics()

	ctx := context.Background()
	backend, err := setup.OpenCatalog(ctx, cfg.Catalog, logger)
	if err != nil {
		logger.Fatal("Failed to open catalog", zap.Error(err))
	}
	defer func() { _ = backend.Close() }()
	logger.Info("Catalog ready", zap.String("driver", backend.Driver))

	svc, err := setup.NewServices(backend, cfg.Search)
	if err != nil {
		logger.Fatal("Failed to build services", zap.Error(err))
	}

	server := chiTransport.NewServer(svc.Chat, svc.Eligibility, svc.Catalog, svc.Health, version.Version, logger)

	r := newRouter(cfg, server, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// newRouter mounts the middleware chain and the API routes. Metrics sit
// ahead of auth so rejected requests are counted too.
func newRouter(cfg config.Config, server *chiTransport.Server, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(metrics.Middleware())
	r.Use(corsMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSONError(w, http.StatusNotFound, "not_found", "route not found")
	})
	server.Routes(r)
	return r
}
