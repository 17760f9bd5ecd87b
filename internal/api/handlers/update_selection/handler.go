package update_selection

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SLN-BookingFlow/internal/api/handlers"
	"github.com/m04kA/SLN-BookingFlow/internal/domain"
	"github.com/m04kA/SLN-BookingFlow/internal/service/drafts"
	"github.com/m04kA/SLN-BookingFlow/internal/service/drafts/models"
	"github.com/m04kA/SLN-BookingFlow/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyRequest       = "в запросе нет ни одного изменения"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDraftNotFound      = "черновик бронирования не найден"
	msgBranchNotSelected  = "сначала нужно выбрать филиал"
	msgStaffNotSelected   = "сначала нужно выбрать мастера"
	msgNoServicesSelected = "сначала нужно выбрать хотя бы одну услугу"
	msgDateNotSelected    = "сначала нужно выбрать дату"
	msgStaffNotFound      = "мастер не найден в выбранном филиале"
	msgServiceNotFound    = "услуга не найдена в выбранном филиале"
	msgDateNotSelectable  = "дата недоступна для выбора"
	msgTooManyServices    = "выбрано слишком много услуг"
	msgSalonUnavailable   = "сервис салона временно недоступен, попробуйте ещё раз"
	msgInvalidSelection   = "некорректные данные выбора"
)

type Handler struct {
	service DraftService
	logger  Logger
}

func NewHandler(service DraftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/drafts/{draftId}/selection
// Изменения применяются в порядке цепочки выбора, ответ содержит
// итоговое состояние черновика
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	var req UpdateSelectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /drafts/{id}/selection - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.isEmpty() {
		h.logger.Warn("PATCH /drafts/{id}/selection - Empty request: draft_id=%s", draftID)
		handlers.RespondBadRequest(w, msgEmptyRequest)
		return
	}

	var (
		draft *models.DraftResponse
		err   error
	)

	// Применяем изменения в порядке цепочки: филиал, мастер, услуга,
	// дата, время, опциональные поля
	if req.Branch != nil {
		draft, err = h.service.SelectBranch(r.Context(), draftID, domain.Branch{
			ID:   req.Branch.ID,
			Name: req.Branch.Name,
		})
	}

	if err == nil && req.StaffID != nil {
		draft, err = h.service.SelectStaff(r.Context(), draftID, *req.StaffID)
	}

	if err == nil && req.ToggleServiceID != nil {
		draft, err = h.service.ToggleService(r.Context(), draftID, *req.ToggleServiceID)
	}

	if err == nil && req.Date != nil {
		var date time.Time
		date, err = time.Parse(domain.DateFormat, *req.Date)
		if err != nil {
			h.logger.Warn("PATCH /drafts/{id}/selection - Invalid date: draft_id=%s, date=%s", draftID, *req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		draft, err = h.service.SelectDate(r.Context(), draftID, date)
	}

	if err == nil && req.Time != nil {
		draft, err = h.service.SelectTime(r.Context(), draftID, types.TimeString(*req.Time))
	}

	if err == nil && req.Extras != nil {
		draft, err = h.service.SetExtras(r.Context(), draftID, *req.Extras)
	}

	if err != nil {
		h.respondError(w, draftID, err)
		return
	}

	h.logger.Info("PATCH /drafts/{id}/selection - Selection updated: draft_id=%s, complete=%t",
		draftID, draft.IsComplete)
	handlers.RespondJSON(w, http.StatusOK, draft)
}

func (h *Handler) respondError(w http.ResponseWriter, draftID string, err error) {
	switch {
	case errors.Is(err, drafts.ErrDraftNotFound):
		h.logger.Warn("PATCH /drafts/{id}/selection - Draft not found: draft_id=%s", draftID)
		handlers.RespondNotFound(w, msgDraftNotFound)

	case errors.Is(err, drafts.ErrBranchNotSelected):
		h.logger.Warn("PATCH /drafts/{id}/selection - Branch not selected: draft_id=%s", draftID)
		handlers.RespondConflict(w, msgBranchNotSelected)

	case errors.Is(err, drafts.ErrStaffNotSelected):
		h.logger.Warn("PATCH /drafts/{id}/selection - Staff not selected: draft_id=%s", draftID)
		handlers.RespondConflict(w, msgStaffNotSelected)

	case errors.Is(err, drafts.ErrNoServicesSelected):
		h.logger.Warn("PATCH /drafts/{id}/selection - No services selected: draft_id=%s", draftID)
		handlers.RespondConflict(w, msgNoServicesSelected)

	case errors.Is(err, drafts.ErrDateNotSelected):
		h.logger.Warn("PATCH /drafts/{id}/selection - Date not selected: draft_id=%s", draftID)
		handlers.RespondConflict(w, msgDateNotSelected)

	case errors.Is(err, drafts.ErrStaffNotFound):
		h.logger.Warn("PATCH /drafts/{id}/selection - Staff not found: draft_id=%s", draftID)
		handlers.RespondNotFound(w, msgStaffNotFound)

	case errors.Is(err, drafts.ErrServiceNotFound):
		h.logger.Warn("PATCH /drafts/{id}/selection - Service not found: draft_id=%s", draftID)
		handlers.RespondNotFound(w, msgServiceNotFound)

	case errors.Is(err, drafts.ErrDateNotSelectable):
		h.logger.Warn("PATCH /drafts/{id}/selection - Date not selectable: draft_id=%s", draftID)
		handlers.RespondBadRequest(w, msgDateNotSelectable)

	case errors.Is(err, drafts.ErrTooManyServices):
		h.logger.Warn("PATCH /drafts/{id}/selection - Too many services: draft_id=%s", draftID)
		handlers.RespondBadRequest(w, msgTooManyServices)

	case errors.Is(err, drafts.ErrSalonUnavailable):
		h.logger.Error("PATCH /drafts/{id}/selection - Salon API unavailable: draft_id=%s, error=%v", draftID, err)
		handlers.RespondBadGateway(w, msgSalonUnavailable)

	case errors.Is(err, drafts.ErrInvalidInput):
		h.logger.Warn("PATCH /drafts/{id}/selection - Invalid input: draft_id=%s, error=%v", draftID, err)
		handlers.RespondBadRequest(w, msgInvalidSelection)

	default:
		h.logger.Error("PATCH /drafts/{id}/selection - Failed to update selection: draft_id=%s, error=%v", draftID, err)
		handlers.RespondInternalError(w)
	}
}
