package main

import (
	"fmt"
	"os"

	"pocketledger/internal/config"
	"pocketledger/internal/database"
	"pocketledger/internal/logger"
	"pocketledger/internal/server"
	"pocketledger/internal/validator"

	"github.com/gin-gonic/gin"
)

// @title           PocketLedger API
// @version         1.0
// @description     Single-user ledger of wallets, categories, savings buckets, transactions and monthly budgets.
// @host            localhost:8080
// @BasePath        /api/v1

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig(appConfig)
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := server.NewRouter(dbManager.DB())

	log.Infow("Starting PocketLedger API", "port", appConfig.Port, "driver", dbConfig.Driver)
	return router.Run(":" + appConfig.Port)
}
