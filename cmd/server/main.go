// Command server runs the atlas admin API: a thin management surface over
// the remote atlas-auth backend.
//
// @title        Atlas Admin API
// @version      1.0
// @description  Administrative API for users, roles, clients and institutions.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wplex/atlas-admin/internal/api"
	"github.com/wplex/atlas-admin/internal/core/ports"
	"github.com/wplex/atlas-admin/internal/pkg/config"
	"github.com/wplex/atlas-admin/internal/session"
	"github.com/wplex/atlas-admin/internal/upstream"
	"github.com/wplex/atlas-admin/internal/upstream/rest"
	"github.com/wplex/atlas-admin/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var registry ports.SessionRegistry = session.NewMemoryRegistry()
	var rdb *redis.Client
	if strings.EqualFold(cfg.Session.Store, "redis") {
		client, err := session.Connect(ctx, session.RedisConfig{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer client.Close()
		rdb = client
		registry = session.NewRedisRegistry(client, cfg.Session.TTL)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("session registry backed by redis")
	}

	loader := session.NewLoader(registry, session.LoaderOptions{
		Secret:          []byte(cfg.Session.JWTSecret),
		Audience:        cfg.Session.Audience,
		Issuer:          cfg.Session.Issuer,
		VerifySignature: cfg.Session.VerifySignature,
	}, log)
	if !cfg.Session.VerifySignature {
		log.Warn().Msg("token signature verification is disabled")
	}

	restClient := rest.New(cfg.Upstream.Timeout, log)
	resources := upstream.NewFactory(restClient, cfg.Upstream.BaseURL)

	e := api.NewRouter(cfg, resources, registry, loader, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("upstream", cfg.Upstream.BaseURL).Msg("atlas admin listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("clean shutdown failed")
	}
}
