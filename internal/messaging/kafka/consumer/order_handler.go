package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/atuljain2995/Tangry-Website/internal/email"
	"github.com/atuljain2995/Tangry-Website/internal/order"
)

// handleOrderPlaced decrements stock for every purchased variant and
// sends the confirmation email.
func handleOrderPlaced(ctx context.Context, payload []byte, deps Deps, logger *zap.Logger) error {
	var event order.PlacedEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("decode ORDER_PLACED: %w", err)
	}

	logger.Info("order placed event received",
		zap.String("order_number", event.OrderNumber),
		zap.Int("items", len(event.Items)),
	)

	for _, item := range event.Items {
		if err := deps.Catalog.DecrementStock(ctx, item.ProductID, item.VariantID, item.Quantity); err != nil {
			// Stock rows for retired products may be gone; the order
			// itself already stands, so log and keep going.
			logger.Warn("stock decrement failed",
				zap.String("order_number", event.OrderNumber),
				zap.String("product_id", item.ProductID),
				zap.String("variant_id", item.VariantID),
				zap.Error(err),
			)
		}
	}

	if deps.NotifyEmail == "" {
		return nil
	}

	summary := email.OrderSummary{
		OrderNumber:   event.OrderNumber,
		PaymentMethod: event.PaymentMethod,
		Total:         event.Total.String(),
	}
	for _, item := range event.Items {
		summary.ItemLines = append(summary.ItemLines,
			fmt.Sprintf("%s x%d", item.ProductName, item.Quantity))
	}

	if err := deps.Email.SendOrderConfirmation(ctx, deps.NotifyEmail, summary); err != nil {
		return fmt.Errorf("send confirmation email: %w", err)
	}
	return nil
}
