package main

import (
	"log"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/atuljain2995/Tangry-Website/internal/app"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if err := app.RunConsumer(logger); err != nil {
		logger.Fatal("consumer failed", zap.Error(err))
	}
}
