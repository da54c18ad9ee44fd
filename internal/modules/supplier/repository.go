package supplier

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for supplier data storage.
type Repository interface {
	CreateSupplier(ctx context.Context, s *Supplier) error
	GetSupplierByID(ctx context.Context, id uuid.UUID) (*Supplier, error)
	GetSupplierByEmail(ctx context.Context, email string) (*Supplier, error)
	ListSuppliers(ctx context.Context) ([]*Supplier, error)
	UpdateSupplier(ctx context.Context, s *Supplier) error
	DeleteSupplier(ctx context.Context, id uuid.UUID) error
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
}
