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

	"github.com/spf13/pflag"

	"github.com/iudanet/postkeeper/internal/config"
	"github.com/iudanet/postkeeper/internal/server/cache"
	"github.com/iudanet/postkeeper/internal/server/handlers"
	"github.com/iudanet/postkeeper/internal/server/metrics"
	"github.com/iudanet/postkeeper/internal/server/middleware"
	"github.com/iudanet/postkeeper/internal/server/storage/sqldb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	fs := pflag.NewFlagSet("postkeeper-server", pflag.ExitOnError)
	showVersion := fs.Bool("version", false, "Show version information")
	config.RegisterServerFlags(fs)
	_ = fs.Parse(os.Args[1:])

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	cfg, err := config.LoadServer(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := config.NewLogger(os.Stdout, cfg.LogLevel, true)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Server, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqldb.New(ctx, cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()
	logger.Info("Storage ready", "driver", cfg.DBDriver)

	if cfg.Seed {
		seeded, err := db.Seed(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
		logger.Info("Seed finished", "inserted", seeded)
	}

	postsCache, err := newCache(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer postsCache.Close()

	limiter := middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow, logger)
	defer limiter.Stop()

	metrics.Register()

	router := handlers.NewRouter(handlers.RouterConfig{
		Logger:      logger,
		Storage:     db,
		Cache:       postsCache,
		CacheTTL:    cfg.CacheTTL,
		RateLimiter: limiter,
		Version:     Version,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Postkeeper server starting", "addr", cfg.Addr, "version", Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}

// newCache выбирает Redis, если задан адрес, иначе кеш в памяти
func newCache(ctx context.Context, cfg *config.Server, logger *slog.Logger) (cache.Cache, error) {
	if cfg.RedisAddr == "" {
		logger.Info("Using in-memory posts cache")
		return cache.NewMemoryCache(), nil
	}

	rc := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := rc.Ping(ctx); err != nil {
		_ = rc.Close()
		return nil, err
	}

	logger.Info("Using redis posts cache", "addr", cfg.RedisAddr)
	return rc, nil
}

func printVersion() {
	fmt.Printf("Postkeeper Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
