package confirm_booking

import "github.com/m04kA/SLN-BookingFlow/internal/service/session"

// Request модель запроса на отправку бронирования
// Token может быть пустым: тогда пользователь не авторизован.
// GuestName и GuestPhone заполняются только при гостевой отправке
type Request struct {
	DraftID    string
	Token      string
	Note       *string
	GuestName  *string
	GuestPhone *string
}

// Response модель ответа на отправку бронирования
// NextStep = guest_or_signin означает, что бронирование не отправлялось:
// клиент должен показать выбор "гость или вход" и повторить запрос
type Response struct {
	NextStep  session.NextStep
	BookingID *int64
}
