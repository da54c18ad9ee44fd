package order

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/georgemunganga/marketplace-backend/internal/platform/apperr"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service defines the order management business logic.
type Service interface {
	// CreateOrder prices every requested line from the current product price
	// and persists the lines and the header together.
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error)

	// GetOrder retrieves an order with its lines, products and categories populated.
	GetOrder(ctx context.Context, id string) (*Order, error)

	ListOrders(ctx context.Context) ([]*Order, error)

	ListUserOrders(ctx context.Context, userID string) ([]*Order, error)

	// UpdateStatus sets the order status to any non-empty value.
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Order, error)

	// DeleteOrder removes the order and every line it owns.
	DeleteOrder(ctx context.Context, id string) error

	TotalSales(ctx context.Context) (decimal.Decimal, error)

	CountOrders(ctx context.Context) (int64, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// MaxQuantity and MaxTotal are the bounds of the order_items.quantity and
// orders.total_price columns.
const MaxQuantity = math.MaxInt32

var MaxTotal = decimal.RequireFromString("999999999999.99")

// NewService creates a new order service.
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	if len(req.OrderItems) == 0 {
		return nil, apperr.Validation("orderItems must contain at least one item")
	}
	if err := validateShipping(req); err != nil {
		return nil, err
	}
	userID, err := parseID(req.User, "user")
	if err != nil {
		return nil, err
	}

	// Validate every line before touching the store.
	productIDs := make([]uuid.UUID, len(req.OrderItems))
	for i, line := range req.OrderItems {
		if line.Quantity <= 0 || line.Quantity > MaxQuantity {
			return nil, apperr.Validation("quantity must be between 1 and %d for product %s", MaxQuantity, line.Product)
		}
		if productIDs[i], err = parseID(line.Product, "product"); err != nil {
			return nil, err
		}
	}

	// ── Price each line at its product's current price ────────────────────────
	items := make([]*OrderItem, 0, len(req.OrderItems))
	total := decimal.Zero
	for i, line := range req.OrderItems {
		price, err := s.repo.GetProductPrice(ctx, productIDs[i])
		if err != nil {
			return nil, err
		}
		item := &OrderItem{
			ID:        uuid.New(),
			Quantity:  line.Quantity,
			UnitPrice: price,
			Product:   &ProductRef{ID: productIDs[i]},
		}
		total = total.Add(item.LineTotal())
		items = append(items, item)
	}
	if total.GreaterThan(MaxTotal) {
		return nil, apperr.Validation("order total %s exceeds the maximum of %s", total, MaxTotal)
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = StatusPending
	}

	o := &Order{
		ID:               uuid.New(),
		OrderItems:       items,
		ShippingAddress1: req.ShippingAddress1,
		ShippingAddress2: req.ShippingAddress2,
		City:             req.City,
		Zip:              req.Zip,
		Country:          req.Country,
		Phone:            req.Phone,
		Status:           status,
		TotalPrice:       total,
		User:             &UserRef{ID: userID},
		DateOrdered:      s.now().UTC(),
	}
	if err := s.repo.CreateOrder(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}
	return o, nil
}

func (s *service) GetOrder(ctx context.Context, id string) (*Order, error) {
	oid, err := parseID(id, "order")
	if err != nil {
		return nil, err
	}
	return s.repo.GetOrderByID(ctx, oid)
}

func (s *service) ListOrders(ctx context.Context) ([]*Order, error) {
	return s.repo.ListOrders(ctx)
}

func (s *service) ListUserOrders(ctx context.Context, userID string) ([]*Order, error) {
	uid, err := parseID(userID, "user")
	if err != nil {
		return nil, err
	}
	return s.repo.ListOrdersByUser(ctx, uid)
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Order, error) {
	oid, err := parseID(id, "order")
	if err != nil {
		return nil, err
	}
	status := strings.TrimSpace(req.Status)
	if status == "" {
		return nil, apperr.Validation("status is required")
	}
	if err := s.repo.UpdateStatus(ctx, oid, status); err != nil {
		return nil, err
	}
	return s.repo.GetOrderByID(ctx, oid)
}

func (s *service) DeleteOrder(ctx context.Context, id string) error {
	oid, err := parseID(id, "order")
	if err != nil {
		return err
	}
	return s.repo.DeleteOrder(ctx, oid)
}

func (s *service) TotalSales(ctx context.Context) (decimal.Decimal, error) {
	return s.repo.TotalSales(ctx)
}

func (s *service) CountOrders(ctx context.Context) (int64, error) {
	return s.repo.CountOrders(ctx)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func validateShipping(req CreateOrderRequest) error {
	required := []struct{ name, value string }{
		{"shippingAddress1", req.ShippingAddress1},
		{"city", req.City},
		{"zip", req.Zip},
		{"country", req.Country},
		{"phone", req.Phone},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return apperr.Validation("%s is required", f.name)
		}
	}
	return nil
}

func parseID(raw, what string) (uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return uuid.Nil, apperr.Validation("%s is required", what)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.Validation("invalid %s id %q", what, raw)
	}
	return id, nil
}
