package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/agrohelp/agrohelp-api/docs"
	"github.com/agrohelp/agrohelp-api/internal/api"
	"github.com/agrohelp/agrohelp-api/internal/infrastructure/ai"
	"github.com/agrohelp/agrohelp-api/internal/infrastructure/config"
	"github.com/agrohelp/agrohelp-api/internal/infrastructure/db/mongo"
	"github.com/agrohelp/agrohelp-api/internal/infrastructure/db/redis"
	"github.com/agrohelp/agrohelp-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        AgroHelp API
// @version      1.0
// @description  Farmer-support backend: advisories, market prices, expert Q&A and AI assistance.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	// .env is a local-development convenience; absence is not an error.
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		fallback := logger.Get()
		fallback.Fatal().Err(err).Msg("configuration invalid")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb unavailable")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis unavailable")
	}
	defer rdb.Close()

	provider, err := ai.NewGeminiProvider(ctx, cfg.Gemini.APIKey)
	if err != nil {
		log.Fatal().Err(err).Msg("gemini client failed")
	}

	detector, err := ai.NewRoboflowDetector(cfg.Roboflow.Endpoint, cfg.Roboflow.APIKey)
	if err != nil {
		log.Fatal().Err(err).Msg("roboflow client failed")
	}

	e := api.NewRouter(api.Options{
		DB:         db,
		Redis:      rdb,
		JWTSecret:  cfg.JWTSecret,
		AIProvider: provider,
		Detector:   detector,
		Logger:     log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server exited")
}
