package product

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/georgemunganga/marketplace-backend/internal/modules/category"
	"github.com/georgemunganga/marketplace-backend/internal/platform/apperr"
	"github.com/google/uuid"
)

// MaxGalleryImages caps the number of files accepted by a gallery update.
const MaxGalleryImages = 10

const maxStock = 255

// CategoryLookup resolves the category a product is filed under.
// category.Repository satisfies it.
type CategoryLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*category.Category, error)
}

// Service defines product business logic.
type Service interface {
	// ListProducts returns all products, filtered by a comma separated list of
	// category ids when categories is non-empty.
	ListProducts(ctx context.Context, categories string) ([]*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	CountProducts(ctx context.Context) (int64, error)

	// FeaturedProducts returns up to count featured products. An empty or "0" count means all.
	FeaturedProducts(ctx context.Context, count string) ([]*Product, error)

	// CreateProduct stores img and creates the product pointing at it.
	// baseURL is prepended to the stored file name.
	CreateProduct(ctx context.Context, req ProductRequest, img *Image, baseURL string) (*Product, error)
	UpdateProduct(ctx context.Context, id string, req ProductRequest) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error

	// UpdateGallery replaces the product's gallery with imgs.
	UpdateGallery(ctx context.Context, id string, imgs []*Image, baseURL string) (*Product, error)
}

type service struct {
	repo       Repository
	categories CategoryLookup
	images     ImageStore
	now        func() time.Time
}

func NewService(repo Repository, categories CategoryLookup, images ImageStore) Service {
	return &service{repo: repo, categories: categories, images: images, now: time.Now}
}

func (s *service) ListProducts(ctx context.Context, categories string) ([]*Product, error) {
	var ids []uuid.UUID
	for _, raw := range strings.Split(categories, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, apperr.Validation("invalid category id %q", raw)
		}
		ids = append(ids, id)
	}
	return s.repo.List(ctx, ids)
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	pid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, pid)
}

func (s *service) CountProducts(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *service) FeaturedProducts(ctx context.Context, count string) ([]*Product, error) {
	limit := 0
	if count != "" {
		n, err := strconv.Atoi(count)
		if err != nil || n < 0 {
			return nil, apperr.Validation("count must be a non-negative integer")
		}
		limit = n
	}
	return s.repo.Featured(ctx, limit)
}

func (s *service) CreateProduct(ctx context.Context, req ProductRequest, img *Image, baseURL string) (*Product, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	c, err := s.resolveCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, apperr.Validation("no image in the request")
	}

	filename, err := s.images.Save(img)
	if err != nil {
		return nil, err
	}
	p := &Product{
		ID:          uuid.New(),
		Image:       baseURL + filename,
		Images:      []string{},
		Category:    c,
		DateCreated: s.now().UTC(),
	}
	apply(p, req)
	if err := s.repo.Create(ctx, p); err != nil {
		s.images.Remove(filename)
		return nil, err
	}
	return p, nil
}

func (s *service) UpdateProduct(ctx context.Context, id string, req ProductRequest) (*Product, error) {
	pid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if err := validate(req); err != nil {
		return nil, err
	}
	c, err := s.resolveCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}
	p, err := s.repo.GetByID(ctx, pid)
	if err != nil {
		return nil, err
	}
	apply(p, req)
	if req.Image != "" {
		p.Image = req.Image
	}
	p.Category = c
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	pid, err := parseID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, pid)
}

func (s *service) UpdateGallery(ctx context.Context, id string, imgs []*Image, baseURL string) (*Product, error) {
	pid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if len(imgs) > MaxGalleryImages {
		return nil, apperr.Validation("at most %d gallery images are accepted", MaxGalleryImages)
	}
	p, err := s.repo.GetByID(ctx, pid)
	if err != nil {
		return nil, err
	}

	saved := make([]string, 0, len(imgs))
	urls := make([]string, 0, len(imgs))
	for _, img := range imgs {
		filename, err := s.images.Save(img)
		if err != nil {
			s.removeAll(saved)
			return nil, err
		}
		saved = append(saved, filename)
		urls = append(urls, baseURL+filename)
	}
	if err := s.repo.SetImages(ctx, pid, urls); err != nil {
		s.removeAll(saved)
		return nil, err
	}
	p.Images = urls
	return p, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func (s *service) resolveCategory(ctx context.Context, raw string) (*category.Category, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, apperr.Validation("invalid category")
	}
	c, err := s.categories.GetByID(ctx, id)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, apperr.Validation("invalid category")
	}
	return c, err
}

func (s *service) removeAll(filenames []string) {
	for _, f := range filenames {
		s.images.Remove(f)
	}
}

func validate(req ProductRequest) error {
	switch {
	case strings.TrimSpace(req.Name) == "":
		return apperr.Validation("name is required")
	case req.Price.IsNegative():
		return apperr.Validation("price must not be negative")
	case req.CountInStock < 0 || req.CountInStock > maxStock:
		return apperr.Validation("countInStock must be between 0 and %d", maxStock)
	}
	return nil
}

func apply(p *Product, req ProductRequest) {
	p.Name = req.Name
	p.Description = req.Description
	p.RichDescription = req.RichDescription
	p.Brand = req.Brand
	p.Price = req.Price
	p.CountInStock = req.CountInStock
	p.Rating = req.Rating
	p.NumReviews = req.NumReviews
	p.IsFeatured = req.IsFeatured
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.Validation("invalid product id %q", raw)
	}
	return id, nil
}
