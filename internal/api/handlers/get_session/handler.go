package get_session

import (
	"net/http"

	"github.com/m04kA/SMC-UrbanServices/internal/api/handlers"
	"github.com/m04kA/SMC-UrbanServices/internal/api/middleware"
	"github.com/m04kA/SMC-UrbanServices/internal/service/session"
)

const msgNoSession = "no active session"

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgNoSession)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, session.FromDomainIdentity(identity))
}
