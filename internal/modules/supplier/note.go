package supplier

import (
	"time"

	"github.com/google/uuid"
)

// Note bounds.
const (
	MinNote = 0
	MaxNote = 5
)

// Note is a customer rating of a supplier with an optional comment.
type Note struct {
	ID         uuid.UUID `json:"id"`
	SupplierID uuid.UUID `json:"supplier"`
	Note       int       `json:"note"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NoteRequest is the payload for POST /supplier/{id}/note.
type NoteRequest struct {
	Note    *int   `json:"note"`
	Comment string `json:"comment"`
}
