package consumer

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/atuljain2995/Tangry-Website/internal/catalog"
	"github.com/atuljain2995/Tangry-Website/internal/email"
	"github.com/atuljain2995/Tangry-Website/internal/order"
)

type recordingEmail struct {
	sentTo    []string
	summaries []email.OrderSummary
}

func (r *recordingEmail) SendOrderConfirmation(_ context.Context, to string, summary email.OrderSummary) error {
	r.sentTo = append(r.sentTo, to)
	r.summaries = append(r.summaries, summary)
	return nil
}

func TestHandleOrderPlaced(t *testing.T) {
	ctx := context.Background()

	catalogSvc := catalog.NewService(catalog.Deps{
		Repo: catalog.NewMemoryRepository(catalog.Seed()),
	})
	mail := &recordingEmail{}

	deps := Deps{
		Catalog:     catalogSvc,
		Email:       mail,
		NotifyEmail: "orders@tangry.in",
	}

	payload, err := json.Marshal(order.PlacedEvent{
		OrderNumber:   "EVR-TEST123-AB12C",
		PaymentMethod: "cod",
		Total:         decimal.NewFromFloat(218.5),
		Items: []order.PlacedEventItem{
			{ProductID: "1", VariantID: "gm-100g", ProductName: "Garam Masala", Quantity: 2},
		},
	})
	require.NoError(t, err)

	require.NoError(t, handleOrderPlaced(ctx, payload, deps, zap.NewNop()))

	p, err := catalogSvc.BySlug(ctx, "garam-masala")
	require.NoError(t, err)
	assert.Equal(t, int64(298), p.Variants[1].Stock, "300 - 2")

	require.Len(t, mail.sentTo, 1)
	assert.Equal(t, "orders@tangry.in", mail.sentTo[0])
	assert.Equal(t, "EVR-TEST123-AB12C", mail.summaries[0].OrderNumber)
	assert.Equal(t, []string{"Garam Masala x2"}, mail.summaries[0].ItemLines)
}

func TestHandleOrderPlaced_UnknownVariantDoesNotFail(t *testing.T) {
	ctx := context.Background()

	deps := Deps{
		Catalog: catalog.NewService(catalog.Deps{Repo: catalog.NewMemoryRepository(catalog.Seed())}),
		Email:   &recordingEmail{},
	}

	payload, _ := json.Marshal(order.PlacedEvent{
		OrderNumber: "EVR-TEST123-AB12C",
		Items: []order.PlacedEventItem{
			{ProductID: "99", VariantID: "gone", Quantity: 1},
		},
	})

	assert.NoError(t, handleOrderPlaced(ctx, payload, deps, zap.NewNop()))
}

func TestHandleOrderPlaced_BadPayload(t *testing.T) {
	deps := Deps{
		Catalog: catalog.NewService(catalog.Deps{Repo: catalog.NewMemoryRepository(catalog.Seed())}),
		Email:   &recordingEmail{},
	}

	assert.Error(t, handleOrderPlaced(context.Background(), []byte("{"), deps, zap.NewNop()))
}
