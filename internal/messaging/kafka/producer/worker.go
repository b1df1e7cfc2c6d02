package producer

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/atuljain2995/Tangry-Website/internal/outbox"
)

const (
	pollInterval = 5 * time.Second
	batchSize    = 10
)

// ProcessOutboxEvents polls the outbox and ships pending events to
// Kafka until ctx is cancelled.
func ProcessOutboxEvents(ctx context.Context, repo outbox.Repository, writer *kafka.Writer, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	logger.Info("outbox processor started", zap.Duration("poll_interval", pollInterval))

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := processPendingEvents(ctx, repo, writer, logger); err != nil {
				logger.Error("outbox batch failed", zap.Error(err))
			}
		}
	}
}

func processPendingEvents(ctx context.Context, repo outbox.Repository, writer *kafka.Writer, logger *zap.Logger) error {
	events, err := repo.ListPending(ctx, batchSize)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}

	logger.Info("processing pending events", zap.Int("count", len(events)))

	for _, event := range events {
		if err := publishEvent(ctx, writer, event); err != nil {
			logger.Error("publish failed",
				zap.String("event_id", event.ID.String()),
				zap.String("event_type", event.EventType),
				zap.Error(err),
			)
			_ = repo.MarkFailed(ctx, event.ID)
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			logger.Error("mark sent failed",
				zap.String("event_id", event.ID.String()),
				zap.Error(err),
			)
			continue
		}

		logger.Info("event sent",
			zap.String("event_id", event.ID.String()),
			zap.String("event_type", event.EventType),
		)
	}
	return nil
}
