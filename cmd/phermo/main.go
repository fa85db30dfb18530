package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/sam-arth07/Phermo/internal/backend"
	"github.com/sam-arth07/Phermo/internal/catalog"
	"github.com/sam-arth07/Phermo/internal/config"
	"github.com/sam-arth07/Phermo/internal/handlers"
	"github.com/sam-arth07/Phermo/internal/jobs"
	"github.com/sam-arth07/Phermo/internal/kv"
	"github.com/sam-arth07/Phermo/internal/log"
	"github.com/sam-arth07/Phermo/internal/metrics"
	"github.com/sam-arth07/Phermo/internal/server"
	"github.com/sam-arth07/Phermo/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.New(cfg.Environment)

	ctx := context.Background()

	storage, closeStorage, err := newStorage(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init session storage")
	}

	api := backend.NewClient(cfg.Backend, logger)

	sessions := session.New(ctx, api, storage, cfg.Security, logger)
	catalogStore := catalog.New(api, cfg.Catalog.PageSize, logger)
	dashboard := metrics.New(api, nil, logger)

	handlerSet := handlers.NewHandlerSet(logger, cfg, sessions, catalogStore, dashboard, handlers.SeededInventory())
	httpServer := server.NewHTTPServer(cfg, logger, handlerSet)

	scheduler := jobs.NewScheduler(dashboard, cfg.Dashboard.RefreshSpec, logger)
	if err := scheduler.Start(); err != nil {
		logger.Error().Err(err).Msg("scheduler start failed")
	}

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	waitForShutdown(logger, httpServer, scheduler, closeStorage)
}

// newStorage prefers Redis and falls back to process memory when no address
// is configured.
func newStorage(ctx context.Context, cfg *config.AppConfig, logger zerolog.Logger) (kv.Storage, func(), error) {
	if cfg.Redis.Addr == "" {
		logger.Warn().Msg("no redis address configured; session storage is in-memory")
		return kv.NewMemory(), func() {}, nil
	}

	redisStore, err := kv.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	closer := func() {
		if err := redisStore.Close(); err != nil {
			logger.Error().Err(err).Msg("redis close error")
		}
	}
	return redisStore, closer, nil
}

func waitForShutdown(logger zerolog.Logger, srv *server.HTTPServer, scheduler *jobs.Scheduler, closeStorage func()) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	scheduler.Stop()
	closeStorage()

	logger.Info().Msg("server exited cleanly")
}
