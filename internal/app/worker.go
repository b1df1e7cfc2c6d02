package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/atuljain2995/Tangry-Website/internal/messaging/kafka/producer"
	"github.com/atuljain2995/Tangry-Website/internal/outbox"
)

const orderEventsTopic = "order.events"

// RunWorker polls the outbox table and publishes pending order events
// to Kafka until interrupted.
func RunWorker(logger *zap.Logger) error {
	logger.Info("starting outbox processor")

	// 1. Connect to database
	db, err := connectDBWithRetry(os.Getenv("DB_URL"), 5)
	if err != nil {
		return err
	}
	defer db.Close()

	// 2. Setup Kafka writer
	kafkaWriter, err := connectKafkaWithRetry(os.Getenv("KAFKA_BROKER"), orderEventsTopic, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	// 3. Create outbox repository
	outboxRepo := outbox.NewRepository(db)

	// 4. Start processor
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, logger)

	// 5. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("outbox processor shutting down")
	cancel()
	time.Sleep(1 * time.Second)
	logger.Info("outbox processor stopped")

	return nil
}
