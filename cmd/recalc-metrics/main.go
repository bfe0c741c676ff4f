package main

import (
	"context"
	"log"
	"time"

	"github.com/vecivendo/marketplace/internal/pkg/config"
	"github.com/vecivendo/marketplace/internal/pkg/database"
	"github.com/vecivendo/marketplace/internal/pkg/logger"
	catalogRepo "github.com/vecivendo/marketplace/services/catalog/repository"
	catalogUsecase "github.com/vecivendo/marketplace/services/catalog/usecase"
)

// Nightly batch that recounts active ads per residential complex and
// stores the totals on the residentials table. Intended to run from cron.
func main() {
	configPath := config.GetEnv("CONFIG_PATH", "config/vecivendo.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	catRepo := catalogRepo.NewCatalogRepo(configs, postgresClient.GetDB())
	catUC := catalogUsecase.NewCatalogUC(catRepo, configs)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	start := time.Now()
	processed, err := catUC.RecalcResidentialMetrics(ctx)
	if err != nil {
		zapLogger.Fatal("Metrics recalculation failed",
			logger.Int("processed", processed),
			logger.Err(err),
		)
	}

	zapLogger.Info("Metrics recalculation completed",
		logger.Int("residentials", processed),
		logger.Duration("took", time.Since(start)),
	)
}
