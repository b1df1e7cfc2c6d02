package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/atuljain2995/Tangry-Website/internal/catalog"
	"github.com/atuljain2995/Tangry-Website/internal/email"
	"github.com/atuljain2995/Tangry-Website/internal/messaging/kafka/consumer"
)

// RunConsumer reads placed-order events and applies their side effects:
// stock decrements and the store notification email.
func RunConsumer(logger *zap.Logger) error {
	logger.Info("starting order events consumer")

	catalogService := catalog.NewService(catalog.Deps{
		Repo:   catalog.NewMemoryRepository(catalog.Seed()),
		Logger: logger,
	})

	emailService, err := email.NewResendServiceFromEnv()
	if err != nil {
		logger.Warn("resend not configured, order emails disabled", zap.Error(err))
		emailService = email.NewNoopService()
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   orderEventsTopic,
		GroupID: "order-consumer-group",
	})
	defer reader.Close()
	logger.Info("kafka reader initialized")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeMessages(ctx, reader, consumer.Deps{
		Catalog:     catalogService,
		Email:       emailService,
		NotifyEmail: os.Getenv("ORDER_NOTIFY_EMAIL"),
		Logger:      logger,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("order events consumer shutting down")
	cancel()
	logger.Info("order events consumer stopped")

	return nil
}
