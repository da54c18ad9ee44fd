package supplier

import (
	"context"

	"github.com/google/uuid"
)

// NoteRepository defines the interface for supplier note storage.
type NoteRepository interface {
	AddNote(ctx context.Context, n *Note) error
	ListNotes(ctx context.Context, supplierID uuid.UUID) ([]*Note, error)
}
