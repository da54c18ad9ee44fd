package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatusPending is the status an order gets when the request doesn't name one.
// Any other string is accepted; there is no transition table.
const StatusPending = "pending"

// Order is the order header with its ordered line items.
type Order struct {
	ID               uuid.UUID       `json:"id"`
	OrderItems       []*OrderItem    `json:"orderItems"`
	ShippingAddress1 string          `json:"shippingAddress1"`
	ShippingAddress2 string          `json:"shippingAddress2,omitempty"`
	City             string          `json:"city"`
	Zip              string          `json:"zip"`
	Country          string          `json:"country"`
	Phone            string          `json:"phone"`
	Status           string          `json:"status"`
	TotalPrice       decimal.Decimal `json:"totalPrice"`
	User             *UserRef        `json:"user,omitempty"`
	DateOrdered      time.Time       `json:"dateOrdered"`
}

// OrderItem is one product+quantity line. UnitPrice is the product price
// read when the line was created.
type OrderItem struct {
	ID        uuid.UUID       `json:"id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Product   *ProductRef     `json:"product"`
}

// LineTotal is quantity × unit price.
func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ProductRef is the product as embedded in an order line. Only ID is set
// unless the order was loaded with its lines populated.
type ProductRef struct {
	ID       uuid.UUID        `json:"id"`
	Name     string           `json:"name,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	Image    string           `json:"image,omitempty"`
	Category *CategoryRef     `json:"category,omitempty"`
}

type CategoryRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Icon  string    `json:"icon,omitempty"`
	Color string    `json:"color,omitempty"`
}

type UserRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name,omitempty"`
}

// LineRequest is a requested product and quantity.
type LineRequest struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// CreateOrderRequest is the payload for POST /orders.
type CreateOrderRequest struct {
	OrderItems       []LineRequest `json:"orderItems"`
	ShippingAddress1 string        `json:"shippingAddress1"`
	ShippingAddress2 string        `json:"shippingAddress2,omitempty"`
	City             string        `json:"city"`
	Zip              string        `json:"zip"`
	Country          string        `json:"country"`
	Phone            string        `json:"phone"`
	Status           string        `json:"status,omitempty"`
	User             string        `json:"user"`
}

// UpdateStatusRequest is the payload for PUT /orders/{id}.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
