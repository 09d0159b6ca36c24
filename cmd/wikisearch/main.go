package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/oku-lab/wikisearch/internal/config"
	"github.com/oku-lab/wikisearch/internal/es"
	logpkg "github.com/oku-lab/wikisearch/internal/logger"
	"github.com/oku-lab/wikisearch/internal/metrics"
	searchrepo "github.com/oku-lab/wikisearch/internal/repository/search"
	chiTransport "github.com/oku-lab/wikisearch/internal/transport/chi"
	healthuc "github.com/oku-lab/wikisearch/internal/usecase/health"
	searchuc "github.com/oku-lab/wikisearch/internal/usecase/search"
	"github.com/oku-lab/wikisearch/internal/version"
)

func main() {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

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

	logger.Info("Starting wikisearch API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("es_endpoint", cfg.Elasticsearch.Endpoint),
		zap.String("es_index", cfg.Elasticsearch.Index),
	)

	engine, err := es.NewClient(es.Config{
		Endpoint: cfg.Elasticsearch.Endpoint,
		Index:    cfg.Elasticsearch.Index,
		Timeout:  time.Duration(cfg.Elasticsearch.RequestTimeoutSec) * time.Second,
	})
	if err != nil {
		logger.Fatal("Failed to create search engine client", zap.Error(err))
	}

	metrics.RegisterSearchMetrics()

	// The engine being down at startup is not fatal: the server answers 503
	// for searches until restarted, and never reconnects per request.
	ctx := context.Background()
	readyTimeout := time.Duration(cfg.Elasticsearch.ReadinessTimeout) * time.Second

	// Pass nil interface (not typed nil pointer!) if the engine is down.
	// Go gotcha: (*search.Repo)(nil) wrapped in Repository != nil.
	var repo searchuc.Repository
	var pinger healthuc.SearchPinger
	if err := engine.WaitForReady(ctx, readyTimeout); err != nil {
		logger.Warn("Search engine not ready, serving 503 for searches", zap.Error(err))
	} else {
		logger.Info("Connected to search engine", zap.String("index", engine.Index()))
		repo = searchrepo.New(engine)
		pinger = engine
	}

	searchSvc := searchuc.New(repo).
		WithMetrics(metrics.SearchQueriesTotal).
		WithLimits(cfg.Search.PageLimit, cfg.Search.RankedLimit, cfg.Search.HighlightLimit)
	healthSvc := healthuc.New(pinger)

	server := chiTransport.NewServer(searchSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
