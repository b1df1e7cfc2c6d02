package order

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/atuljain2995/Tangry-Website/internal/outbox"
)

//go:generate mockgen -source=order_service.go -destination=../mock/order/order_service_mock.go -package=ordermock

type Service interface {
	// Create persists the order, its items and the ORDER_PLACED outbox
	// event in one transaction.
	Create(ctx context.Context, req CreateRequest) (Order, error)

	Detail(ctx context.Context, orderNumber string) (Order, error)
	List(ctx context.Context, page, limit int) ([]Order, int64, error)
}

type Deps struct {
	DB         *sql.DB
	Repo       Repository
	OutboxRepo outbox.Repository
	Logger     *zap.Logger
}

type service struct {
	db         *sql.DB
	repo       Repository
	outboxRepo outbox.Repository
	logger     *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.DB == nil {
		panic("order: DB is required")
	}
	if deps.Repo == nil {
		panic("order: Repo is required")
	}
	if deps.OutboxRepo == nil {
		panic("order: OutboxRepo is required")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &service{
		db:         deps.DB,
		repo:       deps.Repo,
		outboxRepo: deps.OutboxRepo,
		logger:     deps.Logger,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (Order, error) {
	if req.OrderNumber == "" {
		return Order{}, fmt.Errorf("order: order number is required")
	}
	if len(req.Items) == 0 {
		return Order{}, fmt.Errorf("order: at least one item is required")
	}

	o := Order{
		ID:              uuid.New(),
		OrderNumber:     req.OrderNumber,
		Status:          StatusPlaced,
		Items:           req.Items,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		PaymentMethod:   req.PaymentMethod,
		CouponCode:      req.CouponCode,
		Subtotal:        req.Subtotal,
		Discount:        req.Discount,
		Tax:             req.Tax,
		Shipping:        req.Shipping,
		Total:           req.Total,
		CreatedAt:       time.Now(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Order{}, fmt.Errorf("begin tx: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Insert(ctx, o); err != nil {
		return Order{}, fmt.Errorf("insert order: %w", err)
	}
	if err := qtx.InsertItems(ctx, o.ID, o.Items); err != nil {
		return Order{}, fmt.Errorf("insert order items: %w", err)
	}

	event := PlacedEvent{
		OrderNumber:   o.OrderNumber,
		PaymentMethod: o.PaymentMethod,
		Total:         o.Total,
	}
	for _, item := range o.Items {
		event.Items = append(event.Items, PlacedEventItem{
			ProductID:   item.ProductID,
			VariantID:   item.VariantID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
		})
	}
	if err := s.outboxRepo.WithTx(tx).Create(ctx, EventOrderPlaced, event); err != nil {
		return Order{}, fmt.Errorf("insert outbox event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Order{}, fmt.Errorf("commit tx: %w", err)
	}
	committed = true

	s.logger.Info("order persisted",
		zap.String("order_number", o.OrderNumber),
		zap.String("total", o.Total.String()),
		zap.Int("items", len(o.Items)),
	)
	return o, nil
}

func (s *service) Detail(ctx context.Context, orderNumber string) (Order, error) {
	return s.repo.GetByNumber(ctx, orderNumber)
}

func (s *service) List(ctx context.Context, page, limit int) ([]Order, int64, error) {
	return s.repo.List(ctx, page, limit)
}
