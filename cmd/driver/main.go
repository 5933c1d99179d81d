package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/wibowo/kurir/internal/pkg/config"
	"github.com/wibowo/kurir/internal/pkg/database"
	"github.com/wibowo/kurir/internal/pkg/health"
	httpclient "github.com/wibowo/kurir/internal/pkg/http"
	"github.com/wibowo/kurir/internal/pkg/logger"
	"github.com/wibowo/kurir/internal/pkg/middleware"
	"github.com/wibowo/kurir/internal/pkg/server"
	"github.com/wibowo/kurir/services/trip/gateway"
	triphandler "github.com/wibowo/kurir/services/trip/handler"
	"github.com/wibowo/kurir/services/trip/repository"
	"github.com/wibowo/kurir/services/trip/usecase"
)

const serviceName = "kurir-driver-service"

func main() {
	configs := config.InitConfig(".env")

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)
	defer zapLogger.Close()

	zapLogger.Info("Starting driver trip session service",
		logger.String("environment", configs.App.Environment),
		logger.String("version", configs.App.Version))

	shutdownManager := server.NewShutdownManager(zapLogger)

	postgres, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	shutdownManager.Register(func(ctx context.Context) error {
		return postgres.Close()
	})

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})

	sessionRepo := repository.NewSessionRepo(redisClient, configs.Trip.FixTTL)
	prefRepo := repository.NewPreferenceRepo(postgres.GetDB())

	backendClient := httpclient.NewClient(configs.Backend.BaseURL, configs.Backend.APIKey, configs.Backend.Timeout)
	tripGW := gateway.NewBackendGW(backendClient, zapLogger)

	tripUC := usecase.NewTripUC(configs.Trip, tripGW, sessionRepo, prefRepo)
	shutdownManager.Register(func(ctx context.Context) error {
		tripUC.Shutdown()
		return nil
	})

	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, serviceName)
	triphandler.RegisterRoutes(e, tripUC, configs.JWT)

	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := gracefulServer.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(ctx); err != nil {
		zapLogger.Error("Error during shutdown", logger.Err(err))
	}
}
