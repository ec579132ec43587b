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

	"github.com/campaignlab/campaign-api/internal/api"
	"github.com/campaignlab/campaign-api/internal/core/service"
	"github.com/campaignlab/campaign-api/internal/infrastructure/config"
	"github.com/campaignlab/campaign-api/internal/infrastructure/db/postgres"
	"github.com/campaignlab/campaign-api/internal/pkg/password"
	"github.com/campaignlab/campaign-api/internal/pkg/token"
	"github.com/campaignlab/campaign-api/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, err := postgres.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()
	log.Info().Msg("database connected, migrations applied")

	userRepo := postgres.NewUserRepository(db)
	campaignRepo := postgres.NewCampaignRepository(db)

	hasher := password.NewHasher()
	codec := token.NewCodec(cfg.JWTSecret)

	if err := postgres.SeedDemoUser(ctx, userRepo, hasher, cfg.Demo.Username, cfg.Demo.Password, log); err != nil {
		log.Fatal().Err(err).Msg("demo user seeding failed")
	}

	tokenTTL := time.Duration(cfg.TokenTTLMinutes) * time.Minute
	authService := service.NewAuthService(userRepo, hasher, codec, tokenTTL, log)
	campaignService := service.NewCampaignService(campaignRepo, log)

	e := api.NewRouter(authService, campaignService, db, cfg.CORSOrigins, log)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
