package handlers

import (
	"log/slog"
	"net/http"

	"github.com/orderfood/storefront-api/internal/service"
)

// SearchHandler handles product search requests
type SearchHandler struct {
	service *service.CatalogService
	log     *slog.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(service *service.CatalogService, log *slog.Logger) *SearchHandler {
	return &SearchHandler{
		service: service,
		log:     log,
	}
}

// SearchProducts handles GET /api/search?query=STR
// A missing or empty query matches every product: the empty string is a
// substring of every string, and the storefront relies on that to render
// the full catalog from the search box.
func (h *SearchHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	products, err := h.service.SearchProducts(r.Context(), query)
	if err != nil {
		h.log.Error("failed to search products", "query", query, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, products, h.log)
}
