package product

import (
	"io"
	"time"

	"github.com/georgemunganga/marketplace-backend/internal/modules/category"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a sellable item. Category is populated on every read.
type Product struct {
	ID              uuid.UUID          `json:"id"`
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	RichDescription string             `json:"richDescription,omitempty"`
	Image           string             `json:"image"`
	Images          []string           `json:"images"`
	Brand           string             `json:"brand,omitempty"`
	Price           decimal.Decimal    `json:"price"`
	Category        *category.Category `json:"category"`
	CountInStock    int                `json:"countInStock"`
	Rating          float64            `json:"rating"`
	NumReviews      int                `json:"numReviews"`
	IsFeatured      bool               `json:"isFeatured"`
	DateCreated     time.Time          `json:"dateCreated"`
}

// ProductRequest carries the editable product fields. It is read from a
// multipart form on create and from a JSON body on update.
type ProductRequest struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	RichDescription string          `json:"richDescription"`
	Image           string          `json:"image"`
	Brand           string          `json:"brand"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category"`
	CountInStock    int             `json:"countInStock"`
	Rating          float64         `json:"rating"`
	NumReviews      int             `json:"numReviews"`
	IsFeatured      bool            `json:"isFeatured"`
}

// Image is an uploaded image file as received from the client.
type Image struct {
	Filename    string
	ContentType string
	Body        io.Reader
}
