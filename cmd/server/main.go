package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hirewire/portal/internal/api"
	"github.com/hirewire/portal/internal/core/ports"
	"github.com/hirewire/portal/internal/infrastructure/config"
	mongoinfra "github.com/hirewire/portal/internal/infrastructure/db/mongo"
	redisinfra "github.com/hirewire/portal/internal/infrastructure/db/redis"
	"github.com/hirewire/portal/internal/infrastructure/identity"
	"github.com/hirewire/portal/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
)

// @title        Job Portal API
// @version      1.0
// @description  Credential service and role-gated routing for the job portal.
// @BasePath     /
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.Production(),
	})

	client, db, err := mongoinfra.Connect(ctx, mongoinfra.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	userRepo := mongoinfra.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// Redis backs the session store only for the "redis" backend; the JWT
	// backend keeps all state in the cookie.
	var rdb *goredis.Client
	var idp ports.IdentityProvider
	switch cfg.Session.Backend {
	case "redis":
		rdb, err = redisinfra.Connect(ctx, redisinfra.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() {
			_ = rdb.Close()
		}()
		idp = identity.NewRedisProvider(rdb, cfg.Session.TTL, cfg.Production())
	default:
		idp = identity.NewJWTProvider(cfg.Session.Secret, cfg.Session.TTL, cfg.Production())
	}

	e := api.NewRouter(db, rdb, idp, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("session_backend", cfg.Session.Backend).Msg("server started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
