package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"aptrank/server/config"
	"aptrank/server/internal/api"
	"aptrank/server/internal/cache"
	"aptrank/server/internal/ingestion"
	"aptrank/server/internal/ranking"
	"aptrank/server/internal/refdata"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	// Optional .env for local development
	if err := godotenv.Load(); err == nil {
		logger.Info("Loaded environment from .env")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	// Static reference data is loaded once and shared read-only across
	// requests. A malformed registry file is fatal here, nowhere else.
	registry, err := refdata.Load(cfg.RegistryDir, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load reference registries")
	}

	var recordCache ingestion.RecordCache
	if cfg.CacheDBPath != "" {
		store, err := cache.Open(cfg.CacheDBPath, time.Duration(cfg.CacheTTLHours)*time.Hour, logger)
		if err != nil {
			logger.WithError(err).Warn("Continuing without the period cache")
		} else {
			logger.Infof("Using period cache at: %s", cfg.CacheDBPath)
			recordCache = store
		}
	}

	if cfg.ServiceKey == "" {
		logger.Warn("No data.go.kr service key configured; rankings will be synthesized")
	}

	client := ingestion.NewClient(cfg.ServiceKey, time.Duration(cfg.FetchTimeoutSeconds)*time.Second, logger, recordCache)
	orchestrator := ranking.NewOrchestrator(client, cfg.ServiceKey != "", cfg.LookbackMonths, logger)
	handler := api.NewHandler(orchestrator, registry, cfg.DefaultRankingLimit, logger)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))
	api.SetupRoutes(router, handler)

	logger.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
