package supplier

import (
	"time"

	"github.com/google/uuid"
)

// Review states set by an admin.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRefused  = "refused"
)

// Supplier is a business that lists products on the marketplace.
type Supplier struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Phone         string    `json:"phone"`
	TradeRegister string    `json:"tradeRegister"`
	Status        string    `json:"status"`
	Notes         []*Note   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// SupplierRequest is the payload for registering or updating a supplier.
// On update an empty Password keeps the stored hash.
type SupplierRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Phone         string `json:"phone"`
	TradeRegister string `json:"tradeRegister"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
