package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/atuljain2995/Tangry-Website/internal/address"
)

// ErrOrderNotFound is returned for unknown order numbers.
var ErrOrderNotFound = errors.New("order: not found")

//go:generate mockgen -source=order_repo.go -destination=../mock/order/order_repo_mock.go -package=ordermock

type Repository interface {
	WithTx(tx *sql.Tx) Repository

	Insert(ctx context.Context, o Order) error
	InsertItems(ctx context.Context, orderID uuid.UUID, items []Item) error
	GetByNumber(ctx context.Context, orderNumber string) (Order, error)
	List(ctx context.Context, page, limit int) ([]Order, int64, error)
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type repository struct {
	db querier
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: tx}
}

func (r *repository) Insert(ctx context.Context, o Order) error {
	shipping, err := json.Marshal(o.ShippingAddress)
	if err != nil {
		return err
	}
	billing, err := json.Marshal(o.BillingAddress)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO orders (
			id, order_number, status,
			shipping_address, billing_address,
			payment_method, coupon_code,
			subtotal, discount, tax, shipping, total,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())`,
		o.ID, o.OrderNumber, o.Status,
		shipping, billing,
		o.PaymentMethod, o.CouponCode,
		o.Subtotal, o.Discount, o.Tax, o.Shipping, o.Total,
	)
	return err
}

func (r *repository) InsertItems(ctx context.Context, orderID uuid.UUID, items []Item) error {
	for _, item := range items {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO order_items (
				id, order_id, product_id, variant_id,
				product_name, variant_name, price, quantity, image
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			uuid.New(), orderID, item.ProductID, item.VariantID,
			item.ProductName, item.VariantName, item.Price, item.Quantity, item.Image,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *repository) GetByNumber(ctx context.Context, orderNumber string) (Order, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, order_number, status,
			shipping_address, billing_address,
			payment_method, coupon_code,
			subtotal, discount, tax, shipping, total,
			created_at
		FROM orders
		WHERE order_number = $1`,
		orderNumber,
	)

	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Order{}, ErrOrderNotFound
		}
		return Order{}, err
	}

	items, err := r.itemsFor(ctx, o.ID)
	if err != nil {
		return Order{}, err
	}
	o.Items = items
	return o, nil
}

func (r *repository) List(ctx context.Context, page, limit int) ([]Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_number, status,
			shipping_address, billing_address,
			payment_method, coupon_code,
			subtotal, discount, tax, shipping, total,
			created_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *repository) itemsFor(ctx context.Context, orderID uuid.UUID) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, product_id, variant_id, product_name, variant_name, price, quantity, image
		FROM order_items
		WHERE order_id = $1
		ORDER BY product_name`,
		orderID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var item Item
		err := rows.Scan(
			&item.ID, &item.ProductID, &item.VariantID,
			&item.ProductName, &item.VariantName,
			&item.Price, &item.Quantity, &item.Image,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (Order, error) {
	var (
		o        Order
		shipping []byte
		billing  []byte
	)
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.Status,
		&shipping, &billing,
		&o.PaymentMethod, &o.CouponCode,
		&o.Subtotal, &o.Discount, &o.Tax, &o.Shipping, &o.Total,
		&o.CreatedAt,
	)
	if err != nil {
		return Order{}, err
	}

	if err := json.Unmarshal(shipping, &o.ShippingAddress); err != nil {
		o.ShippingAddress = address.Address{}
	}
	if err := json.Unmarshal(billing, &o.BillingAddress); err != nil {
		o.BillingAddress = address.Address{}
	}
	return o, nil
}
