package get_customer_profile

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-UrbanServices/internal/api/handlers"
	"github.com/m04kA/SMC-UrbanServices/internal/service/dashboard"
)

const msgNotFound = "Customer not found"

type Handler struct {
	service DashboardService
	logger  Logger
}

func NewHandler(service DashboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers/{customerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customerId"]

	profile, err := h.service.CustomerProfile(r.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, dashboard.ErrCustomerNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /customers/{id} - Failed to get profile: customer_id=%s, error=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, profile)
}
