package register

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-UrbanServices/internal/api/handlers"
	"github.com/m04kA/SMC-UrbanServices/internal/service/registration"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	service RegistrationService
	logger  Logger
}

func NewHandler(service RegistrationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/registrations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req registration.Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /registrations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Register(&req)
	if err != nil {
		var validationErr *registration.ValidationError
		if errors.As(err, &validationErr) {
			handlers.RespondValidationError(w, registration.ErrInvalidForm.Error(), validationErr.Fields)
			return
		}
		h.logger.Error("POST /registrations - Failed to register: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /registrations - Registration accepted: user_type=%s", resp.UserType)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
