package logout

import (
	"net/http"

	"github.com/m04kA/SMC-UrbanServices/internal/api/handlers"
)

type Handler struct {
	holder SessionHolder
	logger Logger
}

func NewHandler(holder SessionHolder, logger Logger) *Handler {
	return &Handler{
		holder: holder,
		logger: logger,
	}
}

// Handle POST /api/v1/session/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.holder.Logout(r.Context()); err != nil {
		h.logger.Error("POST /session/logout - Failed to clear session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /session/logout - Session cleared")
	w.WriteHeader(http.StatusNoContent)
}
