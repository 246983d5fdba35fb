package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/oggyb/roommatch/internal/app"
	"github.com/oggyb/roommatch/internal/cache"
	"github.com/oggyb/roommatch/internal/config"
	"github.com/oggyb/roommatch/internal/db"
	"github.com/oggyb/roommatch/internal/logger"
	"github.com/oggyb/roommatch/internal/server"
	"github.com/oggyb/roommatch/internal/service/chat"
	"github.com/oggyb/roommatch/internal/service/explore"
)

func main() {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		os.Exit(1)
	}
	sqlDB, err := database.DB()
	if err != nil {
		log.Error("failed to get sql handle", "err", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(ctx); err != nil {
		log.Error("failed to connect to redis", "err", err)
		os.Exit(1)
	}
	defer redisCache.Close()

	appCtx, err := app.New(cfg, database, redisCache, log)
	if err != nil {
		log.Error("failed to wire components", "err", err)
		os.Exit(1)
	}

	if cfg.App.ENV == "development" {
		if err := db.SeedTestData(database, 42); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	go func() {
		checks := map[string]server.Check{
			"db":    sqlDB.PingContext,
			"redis": redisCache.Ping,
		}
		if err := server.StartOpsServer(ctx, cfg.HTTP.Addr, log, checks); err != nil {
			log.Error("ops server failed", "err", err)
		}
	}()

	registrars := []server.Registrar{
		explore.NewRegistrar(appCtx),
		chat.NewRegistrar(appCtx),
	}
	if err := server.StartGRPCServer(ctx, cfg, log, registrars...); err != nil {
		log.Error("failed to start gRPC server", "err", err)
		os.Exit(1)
	}
	log.Info("shut down")
}
