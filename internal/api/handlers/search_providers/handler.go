package search_providers

import (
	"net/http"

	"github.com/m04kA/SMC-UrbanServices/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers
// Query params: q, category, location (все необязательные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providers := h.service.SearchProviders(ToServiceRequest(r.URL.Query()))

	handlers.RespondJSON(w, http.StatusOK, &SearchProvidersResponse{
		Providers: providers,
		Total:     len(providers),
	})
}
