package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"companion_rental/internal/config"
	"companion_rental/internal/logger"
	"companion_rental/internal/router"
	"companion_rental/internal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, envLoaded, err := config.Load()
	if err != nil {
		log := logger.New("info")
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(cfg.LogLevel)
	if !envLoaded {
		log.Info().Msg("no .env file found, relying on environment variables")
	}
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}

	if err := os.MkdirAll(cfg.UploadsDir, os.ModePerm); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.UploadsDir).Msg("failed to create uploads directory")
	}
	log.Info().Str("dir", cfg.UploadsDir).Msg("uploads directory ready")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := config.ConnectDB(ctx, &cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	if err := config.AutoMigrate(ctx, dbPool); err != nil {
		log.Fatal().Err(err).Msg("failed to auto-migrate database")
	}

	engine := router.Setup(router.Deps{
		DB:     dbPool,
		JWT:    utils.NewJWTUtil(cfg.JWTSecret, utils.TokenTTL),
		Config: cfg,
		Logger: log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.ServerPort).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("server exiting")
}
