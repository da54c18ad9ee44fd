package category

import (
	"net/http"

	"github.com/georgemunganga/marketplace-backend/internal/platform/logging"
	"github.com/georgemunganga/marketplace-backend/internal/platform/web"
	"github.com/go-chi/chi/v5"
)

// Handler exposes category HTTP endpoints.
type Handler struct {
	service Service
	log     *logging.Logger
}

func NewHandler(service Service, log *logging.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.listCategories)
		r.Post("/", h.createCategory)
		r.Get("/{id}", h.getCategory)
		r.Put("/{id}", h.updateCategory)
		r.Delete("/{id}", h.deleteCategory)
	})
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		web.Fail(w, h.log, "category", err)
		return
	}
	web.Respond(w, http.StatusOK, categories)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := web.Decode(r, &req); err != nil {
		web.Fail(w, h.log, "category", err)
		return
	}
	c, err := h.service.CreateCategory(r.Context(), req)
	if err != nil {
		web.Fail(w, h.log, "category", err)
		return
	}
	web.Respond(w, http.StatusOK, c)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		web.Fail(w, h.log, "category", err)
		return
	}
	web.Respond(w, http.StatusOK, c)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := web.Decode(r, &req); err != nil {
		web.Fail(w, h.log, "category", err)
		return
	}
	c, err := h.service.UpdateCategory(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		web.Fail(w, h.log, "category", err)
		return
	}
	web.Respond(w, http.StatusOK, c)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		web.Fail(w, h.log, "category", err)
		return
	}
	web.Respond(w, http.StatusOK, map[string]interface{}{"success": true, "message": "the category is deleted"})
}
