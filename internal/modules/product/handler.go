package product

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/georgemunganga/marketplace-backend/internal/platform/apperr"
	"github.com/georgemunganga/marketplace-backend/internal/platform/logging"
	"github.com/georgemunganga/marketplace-backend/internal/platform/web"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// UploadsPath is the URL path uploaded images are served under.
const UploadsPath = "/public/uploads/"

const maxFormMemory = 32 << 20

// Handler exposes product HTTP endpoints.
type Handler struct {
	service Service
	log     *logging.Logger
}

func NewHandler(service Service, log *logging.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.listProducts)
		r.Post("/", h.createProduct)
		r.Get("/{id}", h.getProduct)
		r.Put("/{id}", h.updateProduct)
		r.Delete("/{id}", h.deleteProduct)
		r.Get("/get/count", h.countProducts)
		r.Get("/get/featured", h.featuredProducts)
		r.Get("/get/featured/{count}", h.featuredProducts)
		r.Put("/gallery-images/{id}", h.updateGallery)
	})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context(), r.URL.Query().Get("categories"))
	if err != nil {
		web.Fail(w, h.log, "product", err)
		return
	}
	web.Respond(w, http.StatusOK, products)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		web.Fail(w, h.log, "product", err)
		return
	}
	web.Respond(w, http.StatusOK, p)
}

func (h *Handler) countProducts(w http.ResponseWriter, r *http.Request) {
	n, err := h.service.CountProducts(r.Context())
	if err != nil {
		web.Fail(w, h.log, "product", err)
		return
	}
	web.Respond(w, http.StatusOK, map[string]int64{"productCount": n})
}

func (h *Handler) featuredProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.FeaturedProducts(r.Context(), chi.URLParam(r, "count"))
	if err != nil {
		web.Fail(w, h.log, "product", err)
		return
	}
	web.Respond(w, http.StatusOK, products)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		web.Fail(w, h.log, "product", apperr.Validation("invalid multipart form: %v", err))
		return
	}
	req, err := requestFromForm(r)
	if err != nil {
		web.Fail(w, h.log, "product", err)
		return
	}

	var img *Image
	if files := r.MultipartForm.File["image"]; len(files) > 0 {
		imgs, closeAll, err := openImages(files[:1])
		if err != nil {
			web.Fail(w, h.log, "product", err)
			return
		}
		defer closeAll()
		img = imgs[0]
	}

	p, err := h.service.CreateProduct(r.Context(), req, img, baseURL(r))
	if err != nil {
		web.Fail(w, h.log, "product", err)
		return
	}
	web.Respond(w, http.StatusOK, p)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := web.Decode(r, &req); err != nil {
		web.Fail(w, h.log, "product", err)
		return
	}
	p, err := h.service.UpdateProduct(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		web.Fail(w, h.log, "product", err)
		return
	}
	web.Respond(w, http.StatusOK, p)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		web.Fail(w, h.log, "product", err)
		return
	}
	web.Respond(w, http.StatusOK, map[string]interface{}{"success": true, "message": "the product is deleted"})
}

func (h *Handler) updateGallery(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		web.Fail(w, h.log, "product", apperr.Validation("invalid multipart form: %v", err))
		return
	}
	imgs, closeAll, err := openImages(r.MultipartForm.File["images"])
	if err != nil {
		web.Fail(w, h.log, "product", err)
		return
	}
	defer closeAll()

	p, err := h.service.UpdateGallery(r.Context(), chi.URLParam(r, "id"), imgs, baseURL(r))
	if err != nil {
		web.Fail(w, h.log, "product", err)
		return
	}
	web.Respond(w, http.StatusOK, p)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// baseURL is the public prefix of uploaded files as seen by the caller.
func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host + UploadsPath
}

func requestFromForm(r *http.Request) (ProductRequest, error) {
	req := ProductRequest{
		Name:            r.FormValue("name"),
		Description:     r.FormValue("description"),
		RichDescription: r.FormValue("richDescription"),
		Brand:           r.FormValue("brand"),
		Category:        r.FormValue("category"),
	}
	var err error
	if v := r.FormValue("price"); v != "" {
		if req.Price, err = decimal.NewFromString(v); err != nil {
			return req, apperr.Validation("price must be a number")
		}
	}
	if v := r.FormValue("countInStock"); v != "" {
		if req.CountInStock, err = strconv.Atoi(v); err != nil {
			return req, apperr.Validation("countInStock must be an integer")
		}
	}
	if v := r.FormValue("rating"); v != "" {
		if req.Rating, err = strconv.ParseFloat(v, 64); err != nil {
			return req, apperr.Validation("rating must be a number")
		}
	}
	if v := r.FormValue("numReviews"); v != "" {
		if req.NumReviews, err = strconv.Atoi(v); err != nil {
			return req, apperr.Validation("numReviews must be an integer")
		}
	}
	if v := r.FormValue("isFeatured"); v != "" {
		if req.IsFeatured, err = strconv.ParseBool(v); err != nil {
			return req, apperr.Validation("isFeatured must be a boolean")
		}
	}
	return req, nil
}

func openImages(files []*multipart.FileHeader) ([]*Image, func(), error) {
	opened := make([]multipart.File, 0, len(files))
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}
	imgs := make([]*Image, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, nil, apperr.Validation("cannot read uploaded file %q", fh.Filename)
		}
		opened = append(opened, f)
		imgs = append(imgs, &Image{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Body:        f,
		})
	}
	return imgs, closeAll, nil
}
