package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SLN-BookingFlow/internal/api/handlers"
	"github.com/m04kA/SLN-BookingFlow/internal/api/middleware"
	"github.com/m04kA/SLN-BookingFlow/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgUnauthorized     = "требуется авторизация"
	msgCancelRejected   = "бронирование не может быть отменено"
	msgSalonUnavailable = "сервис салона временно недоступен, попробуйте ещё раз"
)

type Handler struct {
	service     BookingService
	sessionGate SessionGate
	logger      Logger
}

func NewHandler(service BookingService, sessionGate SessionGate, logger Logger) *Handler {
	return &Handler{
		service:     service,
		sessionGate: sessionGate,
		logger:      logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/cancel
// Отмена доступна только авторизованным пользователям
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingIDStr := mux.Vars(r)["bookingId"]
	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	token := middleware.TokenFromContext(r.Context())
	sess, err := h.sessionGate.Resolve(r.Context(), token)
	if err != nil {
		h.logger.Error("POST /bookings/{id}/cancel - Failed to resolve session: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}
	if sess == nil {
		h.logger.Warn("POST /bookings/{id}/cancel - Unauthorized: booking_id=%d", bookingID)
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	err = h.service.Cancel(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/cancel - Invalid input: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		case errors.Is(err, bookings.ErrCancelRejected):
			h.logger.Warn("POST /bookings/{id}/cancel - Cancel rejected: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgCancelRejected)

		case errors.Is(err, bookings.ErrSalonUnavailable):
			h.logger.Error("POST /bookings/{id}/cancel - Salon API unavailable: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadGateway(w, msgSalonUnavailable)

		default:
			h.logger.Error("POST /bookings/{id}/cancel - Failed to cancel booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/cancel - Booking cancelled: booking_id=%d, user_id=%d", bookingID, sess.UserID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
