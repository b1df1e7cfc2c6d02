package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/atuljain2995/Tangry-Website/internal/app"
	"github.com/atuljain2995/Tangry-Website/internal/pkg/apperror"
)

func main() {
	_ = godotenv.Load()
	apperror.Init()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	r := gin.Default()

	// build dependency + routes
	if err := app.BuildApp(r, logger); err != nil {
		logger.Fatal("failed to build app", zap.Error(err))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	app.StartHTTPServer(
		r,
		app.ServerConfig{
			Port:         port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger,
	)
}
