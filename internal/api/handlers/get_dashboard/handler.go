package get_dashboard

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-UrbanServices/internal/api/handlers"
	"github.com/m04kA/SMC-UrbanServices/internal/api/middleware"
	"github.com/m04kA/SMC-UrbanServices/internal/service/dashboard"
)

const (
	msgNoSession       = "login required"
	msgUnsupportedRole = "no dashboard for this role"
)

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

// Handle GET /api/v1/dashboard
// Панель выбирается по роли текущего пользователя
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgNoSession)
		return
	}

	result, err := h.service.ForIdentity(r.Context(), identity)
	if err != nil {
		switch {
		case errors.Is(err, dashboard.ErrUnsupportedRole):
			handlers.RespondForbidden(w, msgUnsupportedRole)

		default:
			h.logger.Error("GET /dashboard - Failed to build dashboard: user_id=%s, role=%s, error=%v",
				identity.ID, identity.Role, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
