package confirm_booking

import (
	confirmBooking "github.com/m04kA/SLN-BookingFlow/internal/usecase/confirm_booking"
)

// ConfirmBookingRequest HTTP request model
// Гостевые поля заполняются только при отправке без авторизации
type ConfirmBookingRequest struct {
	Note       *string `json:"note,omitempty"`
	GuestName  *string `json:"guestName,omitempty"`
	GuestPhone *string `json:"guestPhone,omitempty"`
}

// ConfirmBookingResponse HTTP response model
// nextStep = guest_or_signin означает, что бронирование не отправлялось
type ConfirmBookingResponse struct {
	NextStep  string `json:"nextStep"`
	BookingID *int64 `json:"bookingId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ConfirmBookingRequest) ToUseCaseRequest(draftID, token string) *confirmBooking.Request {
	return &confirmBooking.Request{
		DraftID:    draftID,
		Token:      token,
		Note:       r.Note,
		GuestName:  r.GuestName,
		GuestPhone: r.GuestPhone,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmBooking.Response) *ConfirmBookingResponse {
	return &ConfirmBookingResponse{
		NextStep:  string(resp.NextStep),
		BookingID: resp.BookingID,
	}
}
