package cart

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	carterrors "github.com/atuljain2995/Tangry-Website/internal/cart/errors"
	"github.com/atuljain2995/Tangry-Website/internal/pricing"
)

//go:generate mockgen -source=cart_service.go -destination=../mock/cart/cart_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context, key string) (Cart, error)
	Count(ctx context.Context, key string) (int64, error)

	AddItem(ctx context.Context, key string, req AddItemRequest) (Cart, error)
	UpdateQuantity(ctx context.Context, key, productID, variantID string, quantity int64) (Cart, error)
	RemoveItem(ctx context.Context, key, productID, variantID string) (Cart, error)
	Clear(ctx context.Context, key string) (Cart, error)

	ApplyCoupon(ctx context.Context, key, code string) (Cart, error)
	RemoveCoupon(ctx context.Context, key string) (Cart, error)

	OpenPreview(key string)
	ClosePreview(key string)
	PreviewOpen(key string) bool

	Subscribe(fn func(Cart))
}

type service struct {
	storage  Storage
	engine   *pricing.Engine
	validate *validator.Validate
	logger   *zap.Logger

	mu          sync.Mutex
	previewOpen map[string]bool
	observers   []func(Cart)
}

type Deps struct {
	Storage Storage
	Engine  *pricing.Engine
	Logger  *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Storage == nil {
		panic("cart storage cannot be nil")
	}
	if deps.Engine == nil {
		panic("pricing engine cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		storage:     deps.Storage,
		engine:      deps.Engine,
		validate:    validator.New(),
		logger:      deps.Logger,
		previewOpen: make(map[string]bool),
	}
}

// load returns the persisted cart for the key, or a fresh empty cart
// when nothing usable is stored. Read failures are logged and swallowed.
func (s *service) load(ctx context.Context, key string) Cart {
	stored, err := s.storage.Load(ctx, key)
	if err != nil {
		s.logger.Warn("cart load failed, starting empty",
			zap.String("cart_key", key), zap.Error(err))
	}
	if stored == nil {
		return NewEmptyCart()
	}
	return *stored
}

// commit recomputes every derived total, write-throughs to storage and
// notifies observers. Write failures do not roll back the in-memory
// mutation; memory and storage may diverge until the next save.
func (s *service) commit(ctx context.Context, key string, c Cart) Cart {
	totals := s.engine.Compute(lineItems(c.Items), c.CouponCode, pricing.HomeCountry)
	c.Subtotal = totals.Subtotal
	c.Discount = totals.Discount
	c.Tax = totals.Tax
	c.Shipping = totals.Shipping
	c.Total = totals.Total
	c.UpdatedAt = time.Now()

	if err := s.storage.Save(ctx, key, c); err != nil {
		s.logger.Warn("cart save failed",
			zap.String("cart_key", key), zap.Error(err))
	}

	s.notify(c)
	return c
}

func lineItems(items []CartItem) []pricing.LineItem {
	lines := make([]pricing.LineItem, 0, len(items))
	for _, item := range items {
		lines = append(lines, pricing.LineItem{Price: item.Price, Quantity: item.Quantity})
	}
	return lines
}

func (s *service) Get(ctx context.Context, key string) (Cart, error) {
	return s.load(ctx, key), nil
}

func (s *service) Count(ctx context.Context, key string) (int64, error) {
	return s.load(ctx, key).ItemCount(), nil
}

// AddItem merges on (productId, variantId): an existing line accumulates
// the added quantity, anything else is appended. Stock is deliberately
// not checked here; the product page enforces its own limit.
func (s *service) AddItem(ctx context.Context, key string, req AddItemRequest) (Cart, error) {
	if err := s.validate.Struct(req); err != nil {
		return Cart{}, carterrors.MapValidationError(err)
	}

	c := s.load(ctx, key)

	merged := false
	for i := range c.Items {
		if c.Items[i].ProductID == req.ProductID && c.Items[i].VariantID == req.VariantID {
			c.Items[i].Quantity += req.Quantity
			merged = true
			break
		}
	}
	if !merged {
		c.Items = append(c.Items, CartItem{
			ProductID:   req.ProductID,
			VariantID:   req.VariantID,
			ProductName: req.ProductName,
			VariantName: req.VariantName,
			Price:       req.Price,
			Quantity:    req.Quantity,
			Image:       req.Image,
		})
	}

	return s.commit(ctx, key, c), nil
}

// UpdateQuantity sets the line to an absolute quantity; zero or below
// removes the line instead of being rejected.
func (s *service) UpdateQuantity(ctx context.Context, key, productID, variantID string, quantity int64) (Cart, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, key, productID, variantID)
	}

	c := s.load(ctx, key)
	for i := range c.Items {
		if c.Items[i].ProductID == productID && c.Items[i].VariantID == variantID {
			c.Items[i].Quantity = quantity
			break
		}
	}

	return s.commit(ctx, key, c), nil
}

// RemoveItem deletes the matching line; no match is a no-op, not an
// error.
func (s *service) RemoveItem(ctx context.Context, key, productID, variantID string) (Cart, error) {
	c := s.load(ctx, key)

	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID == productID && item.VariantID == variantID {
			continue
		}
		kept = append(kept, item)
	}
	c.Items = kept

	return s.commit(ctx, key, c), nil
}

// Clear resets to a freshly created empty cart: new id, zeroed totals,
// no coupon.
func (s *service) Clear(ctx context.Context, key string) (Cart, error) {
	return s.commit(ctx, key, NewEmptyCart()), nil
}

// ApplyCoupon stores the upper-cased code without validating it; an
// unknown code simply recomputes to a zero discount.
func (s *service) ApplyCoupon(ctx context.Context, key, code string) (Cart, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Cart{}, carterrors.ErrCouponCodeRequired
	}

	c := s.load(ctx, key)
	c.CouponCode = strings.ToUpper(code)

	return s.commit(ctx, key, c), nil
}

func (s *service) RemoveCoupon(ctx context.Context, key string) (Cart, error) {
	c := s.load(ctx, key)
	c.CouponCode = ""

	return s.commit(ctx, key, c), nil
}

// The preview flag is plain UI state kept apart from the cart data so
// the mutations above stay pure; the add-item handler opens the drawer
// after a successful add.

func (s *service) OpenPreview(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.previewOpen[key] = true
}

func (s *service) ClosePreview(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.previewOpen, key)
}

func (s *service) PreviewOpen(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.previewOpen[key]
}

func (s *service) Subscribe(fn func(Cart)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

func (s *service) notify(c Cart) {
	s.mu.Lock()
	observers := append(make([]func(Cart), 0, len(s.observers)), s.observers...)
	s.mu.Unlock()

	for _, fn := range observers {
		fn(c)
	}
}
