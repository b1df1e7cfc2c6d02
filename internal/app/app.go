package app

import (
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/atuljain2995/Tangry-Website/internal/shared/database/seed"
)

func BuildApp(router *gin.Engine, logger *zap.Logger) error {
	// 1. Setup Infrastructure
	db, err := connectDBWithRetry(os.Getenv("DB_URL"), 5)
	if err != nil {
		return err
	}

	redisClient, err := connectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	if err := seed.SeedAdmin(db); err != nil {
		return err
	}

	// 2. Register Modules & Routes
	registerModules(router, db, redisClient, logger)

	return nil
}
