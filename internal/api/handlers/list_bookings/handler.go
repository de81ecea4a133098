package list_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-UrbanServices/internal/api/handlers"
	"github.com/m04kA/SMC-UrbanServices/internal/service/bookings"
	"github.com/m04kA/SMC-UrbanServices/internal/service/bookings/models"
)

const (
	msgInvalidRecent = "recent must be a non-negative integer"
	msgInvalidStatus = "invalid booking status"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: providerId, customerId, status; recent=N возвращает N последних бронирований
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var (
		resp *models.BookingListResponse
		err  error
	)
	if recent := query.Get("recent"); recent != "" {
		limit, convErr := strconv.Atoi(recent)
		if convErr != nil || limit < 0 {
			h.logger.Warn("GET /bookings - Invalid recent limit: %q", recent)
			handlers.RespondBadRequest(w, msgInvalidRecent)
			return
		}
		resp, err = h.service.MostRecent(r.Context(), limit)
	} else {
		resp, err = h.service.List(r.Context(), ToServiceRequest(query))
	}

	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
