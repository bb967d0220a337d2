package handlers

import (
	"log/slog"
	"net/http"

	"github.com/orderfood/storefront-api/internal/service"
)

// SeedHandler handles the one-time sample data bootstrap
type SeedHandler struct {
	service *service.CatalogService
	log     *slog.Logger
}

// NewSeedHandler creates a new seed handler
func NewSeedHandler(service *service.CatalogService, log *slog.Logger) *SeedHandler {
	return &SeedHandler{
		service: service,
		log:     log,
	}
}

// InitData handles POST /api/init-data
// Inserts the sample catalog only when the products collection is empty;
// repeated calls perform no writes.
func (h *SeedHandler) InitData(w http.ResponseWriter, r *http.Request) {
	created, err := h.service.SeedSampleData(r.Context())
	if err != nil {
		h.log.Error("failed to seed sample data", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	message := "Sample data already exists"
	if created {
		message = "Sample data initialized successfully"
		h.log.Info("sample catalog seeded")
	}

	WriteJSON(w, http.StatusOK, map[string]string{"message": message}, h.log)
}
