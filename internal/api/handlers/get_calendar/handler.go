package get_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SLN-BookingFlow/internal/api/handlers"
	getCalendar "github.com/m04kA/SLN-BookingFlow/internal/usecase/get_calendar"
)

const (
	msgInvalidYear   = "некорректный год"
	msgInvalidMonth  = "некорректный месяц"
	msgInvalidParams = "некорректные параметры календаря"
	msgDraftNotFound = "черновик бронирования не найден"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/drafts/{draftId}/calendar
// Query params: year, month (опциональны, только парой)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	year := 0
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			h.logger.Warn("GET /drafts/{id}/calendar - Invalid year: %v", err)
			handlers.RespondBadRequest(w, msgInvalidYear)
			return
		}
		year = parsed
	}

	month := 0
	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil {
			h.logger.Warn("GET /drafts/{id}/calendar - Invalid month: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		month = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{
		DraftID: draftID,
		Year:    year,
		Month:   month,
	})
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrDraftNotFound):
			h.logger.Warn("GET /drafts/{id}/calendar - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /drafts/{id}/calendar - Invalid params: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /drafts/{id}/calendar - Failed to get calendar: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /drafts/{id}/calendar - Calendar retrieved: draft_id=%s, month=%d-%02d",
		draftID, result.Year, result.Month)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
