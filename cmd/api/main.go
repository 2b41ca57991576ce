package main

import (
	"context"

	"github.com/joho/godotenv"

	"github.com/financeflow/finance-api/internal/api"
	"github.com/financeflow/finance-api/internal/core/service"
	"github.com/financeflow/finance-api/internal/infrastructure/config"
	mongodb "github.com/financeflow/finance-api/internal/infrastructure/db/mongo"
	"github.com/financeflow/finance-api/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	// A missing or unreachable store is not fatal: the process serves every
	// store-backed route as 503 until restarted with working credentials.
	client, db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Warn().Err(err).Msg("mongodb unavailable, starting degraded")
		db = nil
	} else {
		defer func() {
			_ = client.Disconnect(context.Background())
		}()

		users := mongodb.NewUserRepository(db)
		if err := users.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to ensure user indexes")
		}

		bootstrap := service.NewBootstrapService(users, service.BootstrapConfig{
			Enabled:  cfg.Admin.InitOnStart,
			Email:    cfg.Admin.Email,
			Password: cfg.Admin.Password,
		}, log)
		if err := bootstrap.EnsureAdmin(ctx); err != nil {
			log.Error().Err(err).Msg("admin bootstrap failed")
		}
	}

	e := api.NewRouter(db, cfg, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting financeflow api")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
