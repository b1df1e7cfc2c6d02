package app

import (
	"context"
	"database/sql"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/atuljain2995/Tangry-Website/internal/auth"
	"github.com/atuljain2995/Tangry-Website/internal/cart"
	"github.com/atuljain2995/Tangry-Website/internal/catalog"
	"github.com/atuljain2995/Tangry-Website/internal/checkout"
	"github.com/atuljain2995/Tangry-Website/internal/coupon"
	"github.com/atuljain2995/Tangry-Website/internal/middleware"
	"github.com/atuljain2995/Tangry-Website/internal/order"
	"github.com/atuljain2995/Tangry-Website/internal/outbox"
	"github.com/atuljain2995/Tangry-Website/internal/payment"
	"github.com/atuljain2995/Tangry-Website/internal/pricing"
)

// orderPlacerAdapter bridges checkout's handoff to order persistence.
type orderPlacerAdapter struct {
	orders order.Service
}

func (a orderPlacerAdapter) Place(ctx context.Context, req checkout.PlaceOrderRequest) error {
	items := make([]order.Item, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, order.Item{
			ProductID:   it.ProductID,
			VariantID:   it.VariantID,
			ProductName: it.ProductName,
			VariantName: it.VariantName,
			Price:       it.Price,
			Quantity:    it.Quantity,
			Image:       it.Image,
		})
	}

	_, err := a.orders.Create(ctx, order.CreateRequest{
		OrderNumber:     req.OrderNumber,
		Items:           items,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		PaymentMethod:   req.PaymentMethod,
		CouponCode:      req.CouponCode,
		Subtotal:        req.Subtotal,
		Discount:        req.Discount,
		Tax:             req.Tax,
		Shipping:        req.Shipping,
		Total:           req.Total,
	})
	return err
}

func buildGateways(logger *zap.Logger) map[checkout.PaymentMethod]payment.Gateway {
	gateways := map[checkout.PaymentMethod]payment.Gateway{
		checkout.MethodCOD: payment.NewNoopGateway(),
		// Stripe checkout is surfaced but not integrated yet; orders on
		// it are accepted without an upstream capture.
		checkout.MethodStripe: payment.NewNoopGateway(),
	}

	keyID := os.Getenv("RAZORPAY_KEY_ID")
	keySecret := os.Getenv("RAZORPAY_KEY_SECRET")
	if keyID != "" && keySecret != "" {
		gateways[checkout.MethodRazorpay] = payment.NewRazorpayGateway(payment.RazorpayConfig{
			KeyID:     keyID,
			KeySecret: keySecret,
			Logger:    logger,
		})
	} else {
		logger.Warn("razorpay keys not configured, razorpay orders will not be captured upstream")
		gateways[checkout.MethodRazorpay] = payment.NewNoopGateway()
	}

	return gateways
}

func registerModules(router *gin.Engine, db *sql.DB, redisClient *redis.Client, logger *zap.Logger) {
	// --- Repositories ---
	authRepo := auth.NewRepository(db)
	catalogRepo := catalog.NewMemoryRepository(catalog.Seed())
	orderRepo := order.NewRepository(db)
	outboxRepo := outbox.NewRepository(db)

	// --- Services ---
	authService := auth.NewService(authRepo)
	catalogService := catalog.NewService(catalog.Deps{
		Repo:   catalogRepo,
		Logger: logger,
	})
	cartService := cart.NewService(cart.Deps{
		Storage: cart.NewRedisStorage(redisClient, logger),
		Engine:  pricing.NewEngine(coupon.NewStaticStore()),
		Logger:  logger,
	})
	orderService := order.NewService(order.Deps{
		DB:         db,
		Repo:       orderRepo,
		OutboxRepo: outboxRepo,
		Logger:     logger,
	})
	checkoutService := checkout.NewService(checkout.Deps{
		Cart:     cartService,
		Flows:    checkout.NewFlowStore(),
		Gateways: buildGateways(logger),
		Orders:   orderPlacerAdapter{orders: orderService},
		Logger:   logger,
	})

	cartService.Subscribe(func(c cart.Cart) {
		logger.Debug("cart updated",
			zap.String("cart_id", c.ID),
			zap.Int64("item_count", c.ItemCount()),
		)
	})

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	catalogHandler := catalog.NewHandler(catalogService)
	cartHandler := cart.NewHandler(cartService)
	checkoutHandler := checkout.NewHandler(checkoutService)
	orderHandler := order.NewHandler(orderService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(
		middleware.RequestIDMiddleware(),
		middleware.SessionMiddleware(),
		middleware.OptionalAuthMiddleware(),
	)
	{
		auth.RegisterRoutes(api, authHandler)
		catalog.RegisterRoutes(api, catalogHandler)
		cart.RegisterRoutes(api, cartHandler)
		checkout.RegisterRoutes(api, checkoutHandler)
		order.RegisterRoutes(api, orderHandler)
	}
}
