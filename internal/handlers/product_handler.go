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

// ProductHandler handles catalog HTTP requests
type ProductHandler struct {
	service *service.CatalogService
	policy  validation.Policy
	log     *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.CatalogService, policy validation.Policy, log *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		policy:  policy,
		log:     log,
	}
}

// ListProducts handles GET /api/products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		h.log.Error("failed to list products", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, products, h.log)
}

// GetProduct handles GET /api/products/{productID}
// Returns 404 when no product carries the given id.
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	product, err := h.service.GetProduct(r.Context(), productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			h.log.Info("product not found", "product_id", productID)
			WriteError(w, http.StatusNotFound, "Product not found", h.log)
			return
		}

		h.log.Error("failed to get product", "product_id", productID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, product, h.log)
}

// ListProductsByCategory handles GET /api/products/category/{category}
// An unknown category yields an empty array, not an error.
func (h *ProductHandler) ListProductsByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	products, err := h.service.ListProductsByCategory(r.Context(), category)
	if err != nil {
		h.log.Error("failed to list products by category", "category", category, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, products, h.log)
}

// CreateProduct handles POST /api/products
// Replies 422 when the body cannot be decoded or a required field is absent.
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req models.ProductCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("failed to decode product request", "error", err)
		WriteError(w, http.StatusUnprocessableEntity, "Invalid request body", h.log)
		return
	}

	if err := h.policy.Validate(req); err != nil {
		h.log.Warn("product request rejected", "error", err)
		WriteError(w, http.StatusUnprocessableEntity, err.Error(), h.log)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), req)
	if err != nil {
		h.log.Error("failed to create product", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, product, h.log)
	h.log.Info("product created", "product_id", product.ID, "category", product.Category)
}
