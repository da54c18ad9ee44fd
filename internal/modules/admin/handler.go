package admin

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
	router.Route("/admin", func(r chi.Router) {
		r.Post("/login", h.login)
		r.Put("/suppliers/{id}/accept", h.acceptSupplier)
		r.Put("/users/{id}/accept", h.acceptUser)
		r.Put("/users/{id}/ban", h.banUser)
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := web.Decode(r, &req); err != nil {
		web.Fail(w, h.log, "admin", err)
		return
	}
	tok, a, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		web.Fail(w, h.log, "admin", err)
		return
	}
	web.Respond(w, http.StatusOK, map[string]string{"admin": a.Email, "token": tok})
}

func (h *Handler) acceptSupplier(w http.ResponseWriter, r *http.Request) {
	d, err := h.service.AcceptSupplier(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		web.Fail(w, h.log, "supplier", err)
		return
	}
	h.log.Info("supplier reviewed", logging.Fields{Entity: "supplier", ID: d.ID.String()})
	web.Respond(w, http.StatusOK, map[string]interface{}{"success": true, "message": "supplier status updated", "status": d.Status})
}

func (h *Handler) acceptUser(w http.ResponseWriter, r *http.Request) {
	d, err := h.service.AcceptUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		web.Fail(w, h.log, "user", err)
		return
	}
	h.log.Info("user reviewed", logging.Fields{Entity: "user", ID: d.ID.String()})
	web.Respond(w, http.StatusOK, map[string]interface{}{"success": true, "message": "user status updated", "status": d.Status})
}

func (h *Handler) banUser(w http.ResponseWriter, r *http.Request) {
	d, err := h.service.BanUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		web.Fail(w, h.log, "user", err)
		return
	}
	h.log.Info("user banned", logging.Fields{Entity: "user", ID: d.ID.String()})
	web.Respond(w, http.StatusOK, map[string]interface{}{"success": true, "message": "user banned", "status": d.Status})
}
