package consumer

import (
	"context"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/atuljain2995/Tangry-Website/internal/catalog"
	"github.com/atuljain2995/Tangry-Website/internal/email"
	"github.com/atuljain2995/Tangry-Website/internal/order"
)

// Deps are the collaborators the order-events consumer drives.
type Deps struct {
	Catalog     catalog.Service
	Email       email.Service
	NotifyEmail string
	Logger      *zap.Logger
}

// ConsumeMessages reads order events and dispatches them until ctx is
// cancelled. Unknown event types are committed and skipped.
func ConsumeMessages(ctx context.Context, reader *kafka.Reader, deps Deps) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Info("order events consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("fetch message failed", zap.Error(err))
			continue
		}

		eventType := getHeader(msg.Headers, "event_type")

		switch eventType {
		case order.EventOrderPlaced:
			if err := handleOrderPlaced(ctx, msg.Value, deps, logger); err != nil {
				logger.Error("handle ORDER_PLACED failed", zap.Error(err))
				continue
			}
			if err := reader.CommitMessages(ctx, msg); err != nil {
				logger.Error("commit message failed", zap.Error(err))
			}
		default:
			_ = reader.CommitMessages(ctx, msg)
		}
	}
}
