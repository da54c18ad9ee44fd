package order

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/georgemunganga/marketplace-backend/internal/platform/apperr"
	"github.com/georgemunganga/marketplace-backend/internal/platform/logging"
	"github.com/georgemunganga/marketplace-backend/internal/platform/web"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// Handler exposes order HTTP endpoints.
type Handler struct {
	service Service
	log     *logging.Logger
}

func NewHandler(service Service, log *logging.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.listOrders)                            // GET    /orders
		r.Post("/", h.createOrder)                          // POST   /orders
		r.Get("/{id}", h.getOrder)                          // GET    /orders/{id}
		r.Put("/{id}", h.updateStatus)                      // PUT    /orders/{id}
		r.Delete("/{id}", h.deleteOrder)                    // DELETE /orders/{id}
		r.Get("/get/totalsales", h.totalSales)              // GET    /orders/get/totalsales
		r.Get("/get/count", h.countOrders)                  // GET    /orders/get/count
		r.Get("/get/userorders/{userid}", h.listUserOrders) // GET    /orders/get/userorders/{userid}
	})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		web.Fail(w, h.log, "order", err)
		return
	}
	web.Respond(w, http.StatusOK, orders)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Fail(w, h.log, "order", decodeError(err))
		return
	}
	o, err := h.service.CreateOrder(r.Context(), req)
	if err != nil {
		web.Fail(w, h.log, "order", err)
		return
	}
	web.Respond(w, http.StatusOK, o)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.service.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		web.Fail(w, h.log, "order", err)
		return
	}
	web.Respond(w, http.StatusOK, o)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := web.Decode(r, &req); err != nil {
		web.Fail(w, h.log, "order", err)
		return
	}
	o, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		web.Fail(w, h.log, "order", err)
		return
	}
	web.Respond(w, http.StatusOK, o)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteOrder(r.Context(), chi.URLParam(r, "id")); err != nil {
		web.Fail(w, h.log, "order", err)
		return
	}
	web.Respond(w, http.StatusOK, map[string]interface{}{"success": true, "message": "the order is deleted"})
}

func (h *Handler) totalSales(w http.ResponseWriter, r *http.Request) {
	total, err := h.service.TotalSales(r.Context())
	if err != nil {
		web.Fail(w, h.log, "order", err)
		return
	}
	web.Respond(w, http.StatusOK, map[string]decimal.Decimal{"totalsales": total})
}

func (h *Handler) countOrders(w http.ResponseWriter, r *http.Request) {
	n, err := h.service.CountOrders(r.Context())
	if err != nil {
		web.Fail(w, h.log, "order", err)
		return
	}
	web.Respond(w, http.StatusOK, map[string]int64{"orderCount": n})
}

func (h *Handler) listUserOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListUserOrders(r.Context(), chi.URLParam(r, "userid"))
	if err != nil {
		web.Fail(w, h.log, "order", err)
		return
	}
	web.Respond(w, http.StatusOK, orders)
}

// decodeError turns a JSON decode failure on the create payload into a
// validation error naming the offending field.
func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		switch {
		case typeErr.Field == "orderItems":
			return apperr.Validation("orderItems must be an array")
		case strings.HasSuffix(typeErr.Field, ".quantity"):
			return apperr.Validation("quantity must be a positive integer")
		default:
			return apperr.Validation("invalid value for %s", typeErr.Field)
		}
	}
	return apperr.Validation("invalid request body: %v", err)
}
