package product

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for product storage.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// List returns every product, or only those in one of categoryIDs when it is non-empty.
	List(ctx context.Context, categoryIDs []uuid.UUID) ([]*Product, error)

	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)

	// Featured returns featured products, newest first. limit 0 means no limit.
	Featured(ctx context.Context, limit int) ([]*Product, error)

	SetImages(ctx context.Context, id uuid.UUID, images []string) error
}
