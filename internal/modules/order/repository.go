package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Repository defines data access for orders.
type Repository interface {
	// GetProductPrice returns the current price of a product, or a NotFound error.
	GetProductPrice(ctx context.Context, productID uuid.UUID) (decimal.Decimal, error)

	// CreateOrder persists the order's lines and then its header in one transaction.
	CreateOrder(ctx context.Context, o *Order) error

	// GetOrderByID returns the order with lines, products, categories and user name populated.
	GetOrderByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// ListOrders returns every order with its lines and user name populated, newest first.
	ListOrders(ctx context.Context) ([]*Order, error)

	// ListOrdersByUser returns a user's orders with lines populated, newest first.
	ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*Order, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error

	// DeleteOrder removes the header and all of its lines, or nothing.
	DeleteOrder(ctx context.Context, id uuid.UUID) error

	// TotalSales is the sum of every order's total price; zero when there are none.
	TotalSales(ctx context.Context) (decimal.Decimal, error)

	CountOrders(ctx context.Context) (int64, error)
}
