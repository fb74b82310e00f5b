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
	"go.uber.org/zap"

	"github.com/kailas-cloud/fixerhub/internal/config"
	"github.com/kailas-cloud/fixerhub/internal/db"
	"github.com/kailas-cloud/fixerhub/internal/db/memory"
	dbRedis "github.com/kailas-cloud/fixerhub/internal/db/redis"
	logpkg "github.com/kailas-cloud/fixerhub/internal/logger"
	"github.com/kailas-cloud/fixerhub/internal/metrics"
	conversationrepo "github.com/kailas-cloud/fixerhub/internal/repository/conversation"
	directoryrepo "github.com/kailas-cloud/fixerhub/internal/repository/directory"
	"github.com/kailas-cloud/fixerhub/internal/repository/seed"
	chiTransport "github.com/kailas-cloud/fixerhub/internal/transport/chi"
	assistantuc "github.com/kailas-cloud/fixerhub/internal/usecase/assistant"
	directoryuc "github.com/kailas-cloud/fixerhub/internal/usecase/directory"
	healthuc "github.com/kailas-cloud/fixerhub/internal/usecase/health"
	searchuc "github.com/kailas-cloud/fixerhub/internal/usecase/search"
	"github.com/kailas-cloud/fixerhub/internal/version"
)

func main() {
	// Load configuration based on ENV
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

	logger.Info("Starting fixerhub API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	store, err := newStore(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register domain metrics explicitly (no init())
	metrics.RegisterDomainMetrics()

	dirRepo := directoryrepo.New(store, cfg.Directory.KeyPrefix)
	convRepo := conversationrepo.New(store, cfg.Directory.KeyPrefix, cfg.Assistant.ConversationTTL())

	if cfg.Directory.SeedFile != "" {
		seedDirectory(ctx, dirRepo, cfg.Directory.SeedFile, logger)
	}

	dirSvc := directoryuc.New(dirRepo)
	searchSvc := searchuc.New(dirSvc)
	assistantSvc := assistantuc.New(
		convRepo, assistantuc.DefaultEngine(), assistantuc.TimerDelayer{}, cfg.Assistant.ReplyDelay(), logger,
	)
	healthSvc := healthuc.New(store, dirSvc)

	server := chiTransport.NewServer(dirSvc, searchSvc, assistantSvc, healthSvc, logger).
		WithRateLimiter(chiTransport.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst))

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Register(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: writeTimeout(cfg),
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

func newStore(cfg config.DatabaseConfig) (db.Store, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return memory.NewStore(), nil
	case config.DriverValkey, config.DriverRedis:
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Addrs,
			Password: cfg.Password,
			CacheTTL: cfg.CacheTTL(),
		})
		if err != nil {
			return nil, fmt.Errorf("create %s store: %w", cfg.Driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

// seedDirectory loads the seed file into an empty directory. Failures are logged, not fatal.
func seedDirectory(ctx context.Context, repo *directoryrepo.Repo, path string, logger *zap.Logger) {
	data, err := seed.LoadFile(path)
	if err != nil {
		logger.Warn("Seed file not loaded", zap.String("path", path), zap.Error(err))
		return
	}
	applied, err := seed.Apply(ctx, repo, data)
	if err != nil {
		logger.Error("Failed to seed directory", zap.Error(err))
		return
	}
	logger.Info("Directory seed checked",
		zap.String("path", path),
		zap.Bool("applied", applied),
		zap.Int("categories", len(data.Categories)),
		zap.Int("professionals", len(data.Professionals)),
	)
}

// writeTimeout keeps the write deadline above the assistant reply delay.
func writeTimeout(cfg config.Config) time.Duration {
	wt := time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second
	if floor := cfg.Assistant.ReplyDelay() + time.Second; wt < floor {
		return floor
	}
	return wt
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
					_ = json.NewEncoder(w).Encode(chiTransport.ErrorResponse{
						Code:    chiTransport.ErrorCodeInternalError,
						Message: "internal error",
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

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("route", routePattern(r)),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}
