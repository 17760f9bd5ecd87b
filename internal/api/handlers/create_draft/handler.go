package create_draft

import (
	"net/http"

	"github.com/m04kA/SLN-BookingFlow/internal/api/handlers"
	"github.com/m04kA/SLN-BookingFlow/internal/api/middleware"
)

type Handler struct {
	service     DraftService
	sessionGate SessionGate
	logger      Logger
}

func NewHandler(service DraftService, sessionGate SessionGate, logger Logger) *Handler {
	return &Handler{
		service:     service,
		sessionGate: sessionGate,
		logger:      logger,
	}
}

// Handle POST /api/v1/drafts
// Черновик создаётся в начале флоу бронирования. Авторизованный
// пользователь привязывается к черновику, анонимный — нет
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var userID *int64

	token := middleware.TokenFromContext(r.Context())
	sess, err := h.sessionGate.Resolve(r.Context(), token)
	if err != nil {
		h.logger.Error("POST /drafts - Failed to resolve session: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	if sess != nil {
		userID = &sess.UserID
	}

	draft, err := h.service.Create(r.Context(), userID)
	if err != nil {
		h.logger.Error("POST /drafts - Failed to create draft: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /drafts - Draft created: draft_id=%s", draft.ID)
	handlers.RespondJSON(w, http.StatusCreated, draft)
}
