package get_time_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SLN-BookingFlow/internal/api/handlers"
	getTimeSlots "github.com/m04kA/SLN-BookingFlow/internal/usecase/get_time_slots"
)

const (
	msgDraftNotFound      = "черновик бронирования не найден"
	msgBranchNotSelected  = "сначала нужно выбрать филиал"
	msgStaffNotSelected   = "сначала нужно выбрать мастера"
	msgNoServicesSelected = "сначала нужно выбрать хотя бы одну услугу"
	msgDateNotSelected    = "сначала нужно выбрать дату"
	msgStaleRequest       = "запрос устарел, данные уже обновлены более новым запросом"
	msgSalonUnavailable   = "сервис салона временно недоступен, попробуйте ещё раз"
)

type Handler struct {
	useCase GetTimeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetTimeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/drafts/{draftId}/time-slots
// Дата берётся из черновика: слоты показываются для выбранной даты флоу
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	result, err := h.useCase.Execute(r.Context(), &getTimeSlots.Request{DraftID: draftID})
	if err != nil {
		switch {
		case errors.Is(err, getTimeSlots.ErrDraftNotFound):
			h.logger.Warn("GET /drafts/{id}/time-slots - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, getTimeSlots.ErrBranchNotSelected):
			h.logger.Warn("GET /drafts/{id}/time-slots - Branch not selected: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgBranchNotSelected)

		case errors.Is(err, getTimeSlots.ErrStaffNotSelected):
			h.logger.Warn("GET /drafts/{id}/time-slots - Staff not selected: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgStaffNotSelected)

		case errors.Is(err, getTimeSlots.ErrNoServicesSelected):
			h.logger.Warn("GET /drafts/{id}/time-slots - No services selected: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgNoServicesSelected)

		case errors.Is(err, getTimeSlots.ErrDateNotSelected):
			h.logger.Warn("GET /drafts/{id}/time-slots - Date not selected: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgDateNotSelected)

		case errors.Is(err, getTimeSlots.ErrStaleRequest):
			// Клиент игнорирует этот ответ: данные принесёт более новый запрос
			h.logger.Info("GET /drafts/{id}/time-slots - Request superseded: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgStaleRequest)

		case errors.Is(err, getTimeSlots.ErrSalonUnavailable):
			h.logger.Error("GET /drafts/{id}/time-slots - Salon API unavailable: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadGateway(w, msgSalonUnavailable)

		default:
			h.logger.Error("GET /drafts/{id}/time-slots - Failed to get time slots: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /drafts/{id}/time-slots - Slots retrieved: draft_id=%s, date=%s, buckets=%d",
		draftID, result.Date, len(result.Buckets))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
