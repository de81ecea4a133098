package login

import (
	"net/http"

	"github.com/m04kA/SMC-UrbanServices/internal/api/handlers"
	"github.com/m04kA/SMC-UrbanServices/internal/service/session"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingCredentials = "email and password are required"
	msgInvalidCredentials = "invalid email or password"
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

// Handle POST /api/v1/session/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req session.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /session/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Email == "" || req.Password == "" {
		h.logger.Warn("POST /session/login - Missing credentials")
		handlers.RespondBadRequest(w, msgMissingCredentials)
		return
	}

	ok, err := h.holder.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Error("POST /session/login - Failed to persist session: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	if !ok {
		// Неизвестный email и неверный пароль неразличимы для клиента
		handlers.RespondUnauthorized(w, msgInvalidCredentials)
		return
	}

	identity, _ := h.holder.Current()
	h.logger.Info("POST /session/login - Logged in: user_id=%s, role=%s", identity.ID, identity.Role)
	handlers.RespondJSON(w, http.StatusOK, session.FromDomainIdentity(identity))
}
