// @title                       BazarXpress Account Service API
// @version                     1.0
// @description                 User registration, login, profile self-update and admin user management.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	_ "github.com/bazarxpress/account-service/docs"
	"github.com/bazarxpress/account-service/internal/api"
	"github.com/bazarxpress/account-service/internal/core/service"
	"github.com/bazarxpress/account-service/internal/infrastructure/config"
	mongodb "github.com/bazarxpress/account-service/internal/infrastructure/db/mongo"
	"github.com/bazarxpress/account-service/internal/infrastructure/http/handlers"
	"github.com/bazarxpress/account-service/pkg/logger"
)

func main() {
	envErr := godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// The root logger is not configured yet.
		l := logger.New(logger.Options{Service: "account-service", Output: os.Stderr})
		l.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.Init(logger.Options{
		Service: "account-service",
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
	})
	if envErr != nil {
		log.Debug().Msg("no .env file found, using environment variables")
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	users := mongodb.NewUserRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}

	tokens := service.NewTokenService(cfg.JWTSecret, service.DefaultTokenTTL)
	credentials := service.NewCredentialStore(users, service.DefaultPasswordCost)
	accounts := service.NewAccountService(users, credentials, tokens, logger.Component("accounts"))

	if cfg.BootstrapAdminEmail != "" {
		if err := accounts.EnsureAdmin(ctx, cfg.BootstrapAdminEmail); err != nil {
			log.Error().Err(err).Msg("bootstrap admin promotion failed")
		}
	}

	e := api.NewRouter(api.Dependencies{
		Accounts:    accounts,
		Log:         logger.Component("http"),
		CORSOrigins: cfg.CORS.AllowedOrigins,
		Production:  cfg.IsProduction(),
		Checks: map[string]handlers.Check{
			"mongodb": mongodb.Pinger(client),
		},
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced shutdown")
		return
	}

	log.Info().Msg("server stopped")
}
