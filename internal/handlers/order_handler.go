package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/orderfood/storefront-api/internal/models"
	"github.com/orderfood/storefront-api/internal/repository"
	"github.com/orderfood/storefront-api/internal/service"
	"github.com/orderfood/storefront-api/internal/validation"
)

// OrderHandler handles order HTTP requests
type OrderHandler struct {
	service *service.OrderService
	policy  validation.Policy
	log     *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(service *service.OrderService, policy validation.Policy, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		policy:  policy,
		log:     log,
	}
}

// CreateOrder handles POST /api/orders
// Replies 422 when the body cannot be decoded or a required field is absent.
// An empty items array is accepted.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("failed to decode order request", "error", err)
		WriteError(w, http.StatusUnprocessableEntity, "Invalid request body", h.log)
		return
	}

	if err := h.policy.Validate(req); err != nil {
		h.log.Warn("order request rejected", "error", err)
		WriteError(w, http.StatusUnprocessableEntity, err.Error(), h.log)
		return
	}

	order, err := h.service.CreateOrder(r.Context(), req)
	if err != nil {
		h.log.Error("failed to create order", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, order, h.log)
	h.log.Info("order created", "order_id", order.ID, "items_count", len(order.Items))
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		h.log.Error("failed to list orders", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, orders, h.log)
}

// GetOrder handles GET /api/orders/{orderID}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	order, err := h.service.GetOrder(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			h.log.Info("order not found", "order_id", orderID)
			WriteError(w, http.StatusNotFound, "Order not found", h.log)
			return
		}

		h.log.Error("failed to get order", "order_id", orderID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, order, h.log)
}
