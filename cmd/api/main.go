package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/zanzibarboats/booking-system/internal/api"
	"github.com/zanzibarboats/booking-system/internal/infrastructure/bootstrap"
	"github.com/zanzibarboats/booking-system/internal/infrastructure/cache"
	"github.com/zanzibarboats/booking-system/internal/infrastructure/config"
	mongodb "github.com/zanzibarboats/booking-system/internal/infrastructure/db/mongo"
	redisdb "github.com/zanzibarboats/booking-system/internal/infrastructure/db/redis"
	"github.com/zanzibarboats/booking-system/internal/infrastructure/tables"
	"github.com/zanzibarboats/booking-system/pkg/logger"
)

// @title           Boat Booking API
// @version         1.0
// @description     Booking, fleet and dispatch-message API for a boat tour operation.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	var rdb *redis.Client
	if cfg.Cache.Backend == "redis" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() {
			_ = rdb.Close()
		}()
	}

	store := mongodb.NewTableStore(db)
	users := tables.NewUserRepository(store, cache.NewTableCache(store, cfg.Cache.TTL))
	if err := bootstrap.Run(ctx, store, users, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("bootstrap failed")
	}

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting booking api")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
