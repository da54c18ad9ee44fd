package user

import (
	"context"
	"net/http"

	"github.com/georgemunganga/marketplace-backend/internal/platform/logging"
	"github.com/georgemunganga/marketplace-backend/internal/platform/web"
	"github.com/go-chi/chi/v5"
)

// Authenticator checks user credentials and issues a session token.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, *User, error)
}

type Handler struct {
	service Service
	auth    Authenticator
	log     *logging.Logger
}

func NewHandler(service Service, auth Authenticator, log *logging.Logger) *Handler {
	return &Handler{service: service, auth: auth, log: log}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Route("/users", func(r chi.Router) {
		r.Get("/", h.listUsers)
		r.Post("/", h.createUser)
		r.Post("/register", h.registerUser)
		r.Post("/login", h.login)
		r.Get("/get/count", h.countUsers)
		r.Get("/{id}", h.getUser)
		r.Put("/{id}", h.updateUser)
		r.Delete("/{id}", h.deleteUser)
	})
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		web.Fail(w, h.log, "user", err)
		return
	}
	web.Respond(w, http.StatusOK, users)
}

// createUser is the admin-side registration: it answers with the bare user.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := web.Decode(r, &req); err != nil {
		web.Fail(w, h.log, "user", err)
		return
	}
	user, err := h.service.RegisterUser(r.Context(), req)
	if err != nil {
		web.Fail(w, h.log, "user", err)
		return
	}
	web.Respond(w, http.StatusOK, user)
}

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := web.Decode(r, &req); err != nil {
		web.Fail(w, h.log, "user", err)
		return
	}
	user, err := h.service.RegisterUser(r.Context(), req)
	if err != nil {
		web.Fail(w, h.log, "user", err)
		return
	}
	web.Respond(w, http.StatusCreated, map[string]interface{}{"success": true, "user": user})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := web.Decode(r, &req); err != nil {
		web.Fail(w, h.log, "user", err)
		return
	}
	token, user, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		web.Fail(w, h.log, "user", err)
		return
	}
	web.Respond(w, http.StatusOK, map[string]interface{}{"success": true, "token": token, "user": user})
}

func (h *Handler) countUsers(w http.ResponseWriter, r *http.Request) {
	n, err := h.service.CountUsers(r.Context())
	if err != nil {
		web.Fail(w, h.log, "user", err)
		return
	}
	web.Respond(w, http.StatusOK, map[string]interface{}{"success": true, "count": n})
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		web.Fail(w, h.log, "user", err)
		return
	}
	web.Respond(w, http.StatusOK, user)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if err := web.Decode(r, &req); err != nil {
		web.Fail(w, h.log, "user", err)
		return
	}
	user, err := h.service.UpdateUser(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		web.Fail(w, h.log, "user", err)
		return
	}
	web.Respond(w, http.StatusOK, map[string]interface{}{"success": true, "user": user})
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		web.Fail(w, h.log, "user", err)
		return
	}
	web.Respond(w, http.StatusOK, map[string]interface{}{"success": true, "message": "the user is deleted"})
}
