package list_services

import (
	"net/http"

	"github.com/m04kA/SMC-UrbanServices/internal/api/handlers"
	"github.com/m04kA/SMC-UrbanServices/internal/service/catalog/models"
)

type Handler struct {
	service CatalogService
}

func NewHandler(service CatalogService) *Handler {
	return &Handler{service: service}
}

// Handle GET /api/v1/services
// Query params: providerId, category (необязательные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListServicesRequest{}
	if v := r.URL.Query().Get("providerId"); v != "" {
		req.ProviderID = &v
	}
	if v := r.URL.Query().Get("category"); v != "" {
		req.Category = &v
	}

	handlers.RespondJSON(w, http.StatusOK, h.service.ListServices(req))
}
