package supplier

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/georgemunganga/marketplace-backend/internal/platform/apperr"
	"github.com/georgemunganga/marketplace-backend/internal/platform/database"
	"github.com/google/uuid"
)

type notePostgresRepository struct {
	db *sql.DB
}

// NewNotePostgresRepository creates a new PostgreSQL supplier note repository.
func NewNotePostgresRepository(db *sql.DB) NoteRepository {
	return &notePostgresRepository{db: db}
}

func (r *notePostgresRepository) AddNote(ctx context.Context, n *Note) error {
	query := `
		INSERT INTO supplier_notes (id, supplier_id, note, comment, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query, n.ID, n.SupplierID, n.Note, n.Comment, n.CreatedAt)
	return database.Classify(err, fmt.Sprintf("note for supplier %s", n.SupplierID))
}

func (r *notePostgresRepository) ListNotes(ctx context.Context, supplierID uuid.UUID) ([]*Note, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, supplier_id, note, comment, created_at
		FROM supplier_notes
		WHERE supplier_id = $1
		ORDER BY created_at`, supplierID)
	if err != nil {
		return nil, apperr.Persistence(err, "list supplier notes")
	}
	defer rows.Close()

	notes := []*Note{}
	for rows.Next() {
		n := &Note{}
		if err := rows.Scan(&n.ID, &n.SupplierID, &n.Note, &n.Comment, &n.CreatedAt); err != nil {
			return nil, apperr.Persistence(err, "scan supplier note")
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence(err, "list supplier notes")
	}
	return notes, nil
}
