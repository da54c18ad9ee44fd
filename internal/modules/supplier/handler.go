package supplier

import (
	"net/http"

	"github.com/georgemunganga/marketplace-backend/internal/platform/logging"
	"github.com/georgemunganga/marketplace-backend/internal/platform/web"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service Service
	log     *logging.Logger
}

func NewHandler(service Service, log *logging.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Route("/supplier", func(r chi.Router) {
		r.Get("/", h.listSuppliers)
		r.Post("/", h.registerSupplier)
		r.Post("/login", h.login)
		r.Get("/{id}", h.getSupplier)
		r.Put("/{id}", h.updateSupplier)
		r.Delete("/{id}", h.deleteSupplier)
		r.Post("/{id}/note", h.addNote)
		r.Get("/{id}/notes", h.listNotes)
	})
}

func (h *Handler) listSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.service.ListSuppliers(r.Context())
	if err != nil {
		web.Fail(w, h.log, "supplier", err)
		return
	}
	web.Respond(w, http.StatusOK, suppliers)
}

func (h *Handler) registerSupplier(w http.ResponseWriter, r *http.Request) {
	var req SupplierRequest
	if err := web.Decode(r, &req); err != nil {
		web.Fail(w, h.log, "supplier", err)
		return
	}
	supplier, err := h.service.RegisterSupplier(r.Context(), req)
	if err != nil {
		web.Fail(w, h.log, "supplier", err)
		return
	}
	web.Respond(w, http.StatusOK, supplier)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := web.Decode(r, &req); err != nil {
		web.Fail(w, h.log, "supplier", err)
		return
	}
	tok, supplier, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		web.Fail(w, h.log, "supplier", err)
		return
	}
	web.Respond(w, http.StatusOK, map[string]string{"supplier": supplier.Email, "token": tok})
}

func (h *Handler) getSupplier(w http.ResponseWriter, r *http.Request) {
	supplier, err := h.service.GetSupplier(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		web.Fail(w, h.log, "supplier", err)
		return
	}
	web.Respond(w, http.StatusOK, supplier)
}

func (h *Handler) updateSupplier(w http.ResponseWriter, r *http.Request) {
	var req SupplierRequest
	if err := web.Decode(r, &req); err != nil {
		web.Fail(w, h.log, "supplier", err)
		return
	}
	supplier, err := h.service.UpdateSupplier(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		web.Fail(w, h.log, "supplier", err)
		return
	}
	web.Respond(w, http.StatusOK, supplier)
}

func (h *Handler) deleteSupplier(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteSupplier(r.Context(), chi.URLParam(r, "id")); err != nil {
		web.Fail(w, h.log, "supplier", err)
		return
	}
	web.Respond(w, http.StatusOK, map[string]interface{}{"success": true, "message": "the supplier is deleted"})
}

func (h *Handler) addNote(w http.ResponseWriter, r *http.Request) {
	var req NoteRequest
	if err := web.Decode(r, &req); err != nil {
		web.Fail(w, h.log, "supplier", err)
		return
	}
	supplier, err := h.service.AddNote(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		web.Fail(w, h.log, "supplier", err)
		return
	}
	web.Respond(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"message":  "note added",
		"supplier": supplier,
	})
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.service.ListNotes(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		web.Fail(w, h.log, "supplier", err)
		return
	}
	web.Respond(w, http.StatusOK, map[string]interface{}{"success": true, "notes": notes})
}
