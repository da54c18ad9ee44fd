package category

import "github.com/google/uuid"

// Category groups products. Name is required; icon and color are display hints.
type Category struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Icon  string    `json:"icon,omitempty"`
	Color string    `json:"color,omitempty"`
}

// CategoryRequest is the payload for creating or updating a category.
type CategoryRequest struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}
