package admin

import (
	"context"

	"github.com/georgemunganga/marketplace-backend/internal/modules/supplier"
	"github.com/georgemunganga/marketplace-backend/internal/modules/user"
	"github.com/google/uuid"
)

// Repository defines data access for admin accounts.
type Repository interface {
	CreateAdmin(ctx context.Context, a *Admin) error
	GetAdminByEmail(ctx context.Context, email string) (*Admin, error)
}

// UserStore is the part of user.Repository admin reviews need.
type UserStore interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
}

// SupplierStore is the part of supplier.Repository admin reviews need.
type SupplierStore interface {
	GetSupplierByID(ctx context.Context, id uuid.UUID) (*supplier.Supplier, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
}
