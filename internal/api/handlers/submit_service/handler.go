package submit_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-UrbanServices/internal/api/handlers"
	"github.com/m04kA/SMC-UrbanServices/internal/api/middleware"
	"github.com/m04kA/SMC-UrbanServices/internal/service/catalog"
	"github.com/m04kA/SMC-UrbanServices/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnauthorized       = "login required"
	msgProviderNotFound   = "provider not found"
	msgForbidden          = "only the provider can manage their services"
	msgMissingFields      = "Please fill in all required fields"
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

// Handle POST /api/v1/providers/{providerId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID := mux.Vars(r)["providerId"]

	// Управлять услугами может только сам исполнитель
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}
	if !identity.IsProvider() || identity.ID != providerID {
		h.logger.Warn("POST /providers/{id}/services - Access denied: provider_id=%s, user_id=%s",
			providerID, identity.ID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var req models.ServiceDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /providers/{id}/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.SubmitServiceDraft(providerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrProviderNotFound):
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, catalog.ErrMissingFields):
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, catalog.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /providers/{id}/services - Failed to submit service: provider_id=%s, error=%v",
				providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
