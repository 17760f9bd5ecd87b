package logout

import (
	"net/http"

	"github.com/m04kA/SLN-BookingFlow/internal/api/handlers"
	"github.com/m04kA/SLN-BookingFlow/internal/api/middleware"
)

const msgTokenRequired = "требуется bearer токен"

type Handler struct {
	sessionService SessionService
	logger         Logger
}

func NewHandler(sessionService SessionService, logger Logger) *Handler {
	return &Handler{
		sessionService: sessionService,
		logger:         logger,
	}
}

// Handle POST /api/v1/auth/logout
// Идемпотентный выход: повторный вызов с тем же токеном тоже успешен
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := middleware.TokenFromContext(r.Context())
	if token == "" {
		h.logger.Warn("POST /auth/logout - Missing bearer token")
		handlers.RespondUnauthorized(w, msgTokenRequired)
		return
	}

	if err := h.sessionService.Logout(r.Context(), token); err != nil {
		h.logger.Error("POST /auth/logout - Failed to logout: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/logout - Session terminated")
	w.WriteHeader(http.StatusNoContent)
}
