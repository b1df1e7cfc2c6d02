package order_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atuljain2995/Tangry-Website/internal/address"
	"github.com/atuljain2995/Tangry-Website/internal/order"
	"github.com/atuljain2995/Tangry-Website/internal/outbox"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func newService(t *testing.T) (order.Service, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc := order.NewService(order.Deps{
		DB:         db,
		Repo:       order.NewRepository(db),
		OutboxRepo: outbox.NewRepository(db),
	})
	return svc, mock, db
}

func createRequest() order.CreateRequest {
	shipping := address.Address{
		FullName:     "Asha Patel",
		Phone:        "9876543210",
		AddressLine1: "12 MG Road",
		City:         "Pune",
		State:        "Maharashtra",
		PostalCode:   "411001",
		Country:      "IN",
		Type:         address.TypeShipping,
	}
	return order.CreateRequest{
		OrderNumber:     "EVR-TEST123-AB12C",
		Items: []order.Item{
			{ProductID: "1", VariantID: "gm-100g", ProductName: "Garam Masala", VariantName: "100g", Price: dec("85"), Quantity: 2},
		},
		ShippingAddress: shipping,
		BillingAddress:  shipping.AsBilling(),
		PaymentMethod:   "cod",
		Subtotal:        dec("170"),
		Tax:             dec("8.5"),
		Shipping:        dec("40"),
		Total:           dec("218.5"),
	}
}

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success_commits_order_items_and_outbox_event", func(t *testing.T) {
		svc, mock, _ := newService(t)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO orders").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO order_items").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO outbox_events").
			WithArgs(sqlmock.AnyArg(), order.EventOrderPlaced, sqlmock.AnyArg(), outbox.StatusPending).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		o, err := svc.Create(ctx, createRequest())
		require.NoError(t, err)

		assert.Equal(t, "EVR-TEST123-AB12C", o.OrderNumber)
		assert.Equal(t, order.StatusPlaced, o.Status)
		assert.NotEqual(t, uuid.Nil, o.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("order_insert_failure_rolls_back", func(t *testing.T) {
		svc, mock, _ := newService(t)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO orders").
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		_, err := svc.Create(ctx, createRequest())
		assert.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("outbox_insert_failure_rolls_back", func(t *testing.T) {
		svc, mock, _ := newService(t)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO orders").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO order_items").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO outbox_events").
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		_, err := svc.Create(ctx, createRequest())
		assert.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects_empty_order", func(t *testing.T) {
		svc, _, _ := newService(t)

		req := createRequest()
		req.Items = nil
		_, err := svc.Create(ctx, req)
		assert.Error(t, err)
	})
}

func TestOrderService_Detail(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, mock, _ := newService(t)

		orderID := uuid.New()
		shipping, _ := json.Marshal(address.Address{FullName: "Asha Patel", Type: address.TypeShipping})
		billing, _ := json.Marshal(address.Address{FullName: "Asha Patel", Type: address.TypeBilling})

		mock.ExpectQuery("SELECT (.+) FROM orders").
			WithArgs("EVR-TEST123-AB12C").
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "order_number", "status",
				"shipping_address", "billing_address",
				"payment_method", "coupon_code",
				"subtotal", "discount", "tax", "shipping", "total",
				"created_at",
			}).AddRow(
				orderID, "EVR-TEST123-AB12C", order.StatusPlaced,
				shipping, billing,
				"cod", "",
				"170", "0", "8.5", "40", "218.5",
				time.Now(),
			))
		mock.ExpectQuery("SELECT (.+) FROM order_items").
			WithArgs(orderID).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "product_id", "variant_id", "product_name", "variant_name", "price", "quantity", "image",
			}).AddRow(
				uuid.New(), "1", "gm-100g", "Garam Masala", "100g", "85", 2, "",
			))

		o, err := svc.Detail(ctx, "EVR-TEST123-AB12C")
		require.NoError(t, err)

		assert.Equal(t, "Asha Patel", o.ShippingAddress.FullName)
		require.Len(t, o.Items, 1)
		assert.Equal(t, int64(2), o.Items[0].Quantity)
		assert.True(t, o.Total.Equal(dec("218.5")))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown_order_number", func(t *testing.T) {
		svc, mock, _ := newService(t)

		mock.ExpectQuery("SELECT (.+) FROM orders").
			WithArgs("EVR-NOPE-00000").
			WillReturnError(sql.ErrNoRows)

		_, err := svc.Detail(ctx, "EVR-NOPE-00000")
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})
}

func TestOrderService_List(t *testing.T) {
	ctx := context.Background()
	svc, mock, _ := newService(t)

	shipping, _ := json.Marshal(address.Address{})

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT (.+) FROM orders").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "order_number", "status",
			"shipping_address", "billing_address",
			"payment_method", "coupon_code",
			"subtotal", "discount", "tax", "shipping", "total",
			"created_at",
		}).AddRow(
			uuid.New(), "EVR-TEST123-AB12C", order.StatusPlaced,
			shipping, shipping,
			"razorpay", "WELCOME10",
			"170", "17", "7.65", "40", "200.65",
			time.Now(),
		))

	orders, total, err := svc.List(ctx, 1, 20)
	require.NoError(t, err)

	assert.Equal(t, int64(1), total)
	require.Len(t, orders, 1)
	assert.True(t, orders[0].Total.Equal(dec("200.65")))
	require.NoError(t, mock.ExpectationsWereMet())
}
