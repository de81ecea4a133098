package booking_wizard

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-UrbanServices/internal/api/handlers"
	bookingWizard "github.com/m04kA/SMC-UrbanServices/internal/usecase/booking_wizard"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingProviderID  = "providerId is required"
	msgMissingInformation = "Please fill in all required fields"
)

// Handler управляет мастером бронирования по шагам
type Handler struct {
	useCase WizardUseCase
	logger  Logger
}

func NewHandler(useCase WizardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Open POST /api/v1/wizards
func (h *Handler) Open(w http.ResponseWriter, r *http.Request) {
	var req OpenWizardRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizards - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.ProviderID == "" {
		handlers.RespondBadRequest(w, msgMissingProviderID)
		return
	}

	view, err := h.useCase.Open(req.ProviderID)
	if err != nil {
		h.respondError(w, "POST /wizards", err)
		return
	}

	h.logger.Info("POST /wizards - Wizard opened: wizard_id=%s, provider_id=%s", view.ID, view.ProviderID)
	handlers.RespondJSON(w, http.StatusCreated, view)
}

// Get GET /api/v1/wizards/{wizardId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.useCase.Get(wizardID(r))
	if err != nil {
		h.respondError(w, "GET /wizards/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, view)
}

// SetService PUT /api/v1/wizards/{wizardId}/service
func (h *Handler) SetService(w http.ResponseWriter, r *http.Request) {
	var in bookingWizard.ServiceInput
	if err := handlers.DecodeJSON(r, &in); err != nil {
		h.logger.Warn("PUT /wizards/{id}/service - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.useCase.SetService(wizardID(r), &in)
	if err != nil {
		h.respondError(w, "PUT /wizards/{id}/service", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, view)
}

// SetDetails PUT /api/v1/wizards/{wizardId}/details
func (h *Handler) SetDetails(w http.ResponseWriter, r *http.Request) {
	var in bookingWizard.DetailsInput
	if err := handlers.DecodeJSON(r, &in); err != nil {
		h.logger.Warn("PUT /wizards/{id}/details - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.useCase.SetDetails(wizardID(r), &in)
	if err != nil {
		h.respondError(w, "PUT /wizards/{id}/details", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, view)
}

// SetPayment PUT /api/v1/wizards/{wizardId}/payment
func (h *Handler) SetPayment(w http.ResponseWriter, r *http.Request) {
	var in bookingWizard.PaymentInput
	if err := handlers.DecodeJSON(r, &in); err != nil {
		h.logger.Warn("PUT /wizards/{id}/payment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.useCase.SetPayment(wizardID(r), &in)
	if err != nil {
		h.respondError(w, "PUT /wizards/{id}/payment", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, view)
}

// Next POST /api/v1/wizards/{wizardId}/next
func (h *Handler) Next(w http.ResponseWriter, r *http.Request) {
	view, err := h.useCase.Next(wizardID(r))
	if err != nil {
		h.respondError(w, "POST /wizards/{id}/next", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, view)
}

// Back POST /api/v1/wizards/{wizardId}/back
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	view, err := h.useCase.Back(wizardID(r))
	if err != nil {
		h.respondError(w, "POST /wizards/{id}/back", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, view)
}

// Submit POST /api/v1/wizards/{wizardId}/submit
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	id := wizardID(r)

	confirmation, err := h.useCase.Submit(r.Context(), id)
	if err != nil {
		h.respondError(w, "POST /wizards/{id}/submit", err)
		return
	}

	h.logger.Info("POST /wizards/{id}/submit - Booking created: wizard_id=%s, booking_id=%s",
		id, confirmation.Booking.ID)
	handlers.RespondJSON(w, http.StatusCreated, confirmation)
}

// Close DELETE /api/v1/wizards/{wizardId}
func (h *Handler) Close(w http.ResponseWriter, r *http.Request) {
	if err := h.useCase.Close(wizardID(r)); err != nil {
		h.respondError(w, "DELETE /wizards/{id}", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func wizardID(r *http.Request) string {
	return mux.Vars(r)["wizardId"]
}

// respondError переводит ошибки мастера в HTTP статусы
func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, bookingWizard.ErrWizardNotFound),
		errors.Is(err, bookingWizard.ErrProviderNotFound):
		h.logger.Warn("%s - Not found: %v", route, err)
		handlers.RespondNotFound(w, err.Error())

	case errors.Is(err, bookingWizard.ErrProviderUnavailable),
		errors.Is(err, bookingWizard.ErrCannotAdvance),
		errors.Is(err, bookingWizard.ErrAtFirstStep),
		errors.Is(err, bookingWizard.ErrWrongStep):
		h.logger.Warn("%s - Transition rejected: %v", route, err)
		handlers.RespondConflict(w, err.Error())

	case errors.Is(err, bookingWizard.ErrMissingInformation):
		h.logger.Warn("%s - Missing information: %v", route, err)
		handlers.RespondUnprocessable(w, msgMissingInformation)

	case errors.Is(err, bookingWizard.ErrUnknownService),
		errors.Is(err, bookingWizard.ErrInvalidDate),
		errors.Is(err, bookingWizard.ErrInvalidTimeSlot),
		errors.Is(err, bookingWizard.ErrInvalidDuration),
		errors.Is(err, bookingWizard.ErrInvalidPaymentMethod):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Unexpected error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
