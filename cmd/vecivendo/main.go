package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/vecivendo/marketplace/internal/pkg/config"
	"github.com/vecivendo/marketplace/internal/pkg/database"
	"github.com/vecivendo/marketplace/internal/pkg/health"
	"github.com/vecivendo/marketplace/internal/pkg/logger"
	"github.com/vecivendo/marketplace/internal/pkg/middleware"
	natspkg "github.com/vecivendo/marketplace/internal/pkg/nats"
	"github.com/vecivendo/marketplace/internal/pkg/server"
	catalogHandler "github.com/vecivendo/marketplace/services/catalog/handler"
	catalogHTTP "github.com/vecivendo/marketplace/services/catalog/handler/http"
	catalogRepo "github.com/vecivendo/marketplace/services/catalog/repository"
	catalogUsecase "github.com/vecivendo/marketplace/services/catalog/usecase"
	identityGateway "github.com/vecivendo/marketplace/services/identity/gateway"
	identityHandler "github.com/vecivendo/marketplace/services/identity/handler"
	identityHTTP "github.com/vecivendo/marketplace/services/identity/handler/http"
	identityRepo "github.com/vecivendo/marketplace/services/identity/repository"
	identityUsecase "github.com/vecivendo/marketplace/services/identity/usecase"
	ordersGateway "github.com/vecivendo/marketplace/services/orders/gateway"
	ordersHandler "github.com/vecivendo/marketplace/services/orders/handler"
	ordersHTTP "github.com/vecivendo/marketplace/services/orders/handler/http"
	ordersRepo "github.com/vecivendo/marketplace/services/orders/repository"
	ordersUsecase "github.com/vecivendo/marketplace/services/orders/usecase"
)

func main() {
	appName := "vecivendo-marketplace"
	configPath := config.GetEnv("CONFIG_PATH", "config/vecivendo.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Identity service
	idRepo := identityRepo.NewIdentityRepo(configs, postgresClient.GetDB(), redisClient)
	idGW := identityGateway.NewIdentityGW(configs.WhatsApp, natsClient)
	idUC := identityUsecase.NewIdentityUC(idRepo, idGW, configs)

	authHandler := identityHTTP.NewAuthHandler(idUC)
	profileHandler := identityHTTP.NewProfileHandler(idUC)
	idHandler := identityHandler.NewHandler(authHandler, profileHandler, redisClient, configs)

	// Catalog service
	catRepo := catalogRepo.NewCatalogRepo(configs, postgresClient.GetDB())
	catUC := catalogUsecase.NewCatalogUC(catRepo, configs)

	adHandler := catalogHTTP.NewAdHandler(catUC)
	reviewHandler := catalogHTTP.NewReviewHandler(catUC)
	catHandler := catalogHandler.NewHandler(adHandler, reviewHandler, configs)

	// Orders service resolves ads and buyer profiles through the
	// catalog and identity usecases running in the same process.
	ordRepo := ordersRepo.NewOrderRepo(configs, postgresClient.GetDB())
	ordGW := ordersGateway.NewOrderGW(catUC, idUC, natsClient)
	ordUC := ordersUsecase.NewOrderUC(ordRepo, ordGW, configs)

	orderHandler := ordersHTTP.NewOrderHandler(ordUC)
	ordHandler := ordersHandler.NewHandler(orderHandler, configs)

	// Initialize Echo router
	e := echo.New()

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	idHandler.RegisterRoutes(e)
	catHandler.RegisterRoutes(e)
	ordHandler.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server terminated",
			logger.String("app", appName),
			logger.Err(err),
		)
	}
}
