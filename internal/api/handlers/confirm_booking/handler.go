package confirm_booking

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SLN-BookingFlow/internal/api/handlers"
	"github.com/m04kA/SLN-BookingFlow/internal/api/middleware"
	confirmBooking "github.com/m04kA/SLN-BookingFlow/internal/usecase/confirm_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgDraftNotFound      = "черновик бронирования не найден"
	msgDraftIncomplete    = "черновик заполнен не полностью"
	msgGuestInfoRequired  = "для гостевого бронирования нужны имя и телефон"
	msgSubmitRejected     = "салон отклонил бронирование"
	msgSalonUnavailable   = "сервис салона временно недоступен, попробуйте ещё раз"
	msgInvalidRequest     = "некорректные данные бронирования"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts/{draftId}/confirm
// Отправляет бронирование в API салона. Повторных попыток нет:
// при ошибке черновик сохраняется и пользователь решает сам
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	// Тело опционально: авторизованная отправка без заметки
	// может быть пустым запросом
	var req ConfirmBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /drafts/{id}/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	token := middleware.TokenFromContext(r.Context())

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(draftID, token))
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrDraftNotFound):
			h.logger.Warn("POST /drafts/{id}/confirm - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, confirmBooking.ErrDraftIncomplete):
			h.logger.Warn("POST /drafts/{id}/confirm - Draft incomplete: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgDraftIncomplete)

		case errors.Is(err, confirmBooking.ErrGuestInfoRequired):
			h.logger.Warn("POST /drafts/{id}/confirm - Guest info required: draft_id=%s", draftID)
			handlers.RespondBadRequest(w, msgGuestInfoRequired)

		case errors.Is(err, confirmBooking.ErrSubmitRejected):
			h.logger.Warn("POST /drafts/{id}/confirm - Rejected by salon: draft_id=%s, error=%v", draftID, err)
			handlers.RespondConflict(w, msgSubmitRejected)

		case errors.Is(err, confirmBooking.ErrSalonUnavailable):
			h.logger.Error("POST /drafts/{id}/confirm - Salon API unavailable: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadGateway(w, msgSalonUnavailable)

		case errors.Is(err, confirmBooking.ErrInvalidInput):
			h.logger.Warn("POST /drafts/{id}/confirm - Invalid input: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /drafts/{id}/confirm - Failed to confirm booking: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	if result.BookingID == nil {
		// Бронирование не отправлялось: клиент показывает выбор
		// "гость или вход"
		h.logger.Info("POST /drafts/{id}/confirm - Guest or sign-in required: draft_id=%s", draftID)
		handlers.RespondJSON(w, http.StatusOK, response)
		return
	}

	h.logger.Info("POST /drafts/{id}/confirm - Booking submitted: draft_id=%s, booking_id=%d",
		draftID, *result.BookingID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
