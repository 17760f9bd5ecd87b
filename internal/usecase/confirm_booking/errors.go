package confirm_booking

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("confirm_booking: draft not found")

	// ErrDraftIncomplete возвращается, когда в черновике не хватает выбора
	// для отправки бронирования
	ErrDraftIncomplete = errors.New("confirm_booking: draft is incomplete")

	// ErrGuestInfoRequired возвращается, когда гостевая отправка не содержит
	// имени или телефона
	ErrGuestInfoRequired = errors.New("confirm_booking: guest name and phone are required")

	// ErrSubmitRejected возвращается, когда API салона отклонил бронирование
	ErrSubmitRejected = errors.New("confirm_booking: booking rejected by salon")

	// ErrSalonUnavailable возвращается, когда API салона недоступен
	ErrSalonUnavailable = errors.New("confirm_booking: salon api unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)
