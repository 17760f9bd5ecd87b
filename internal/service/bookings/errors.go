package bookings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrCancelRejected возвращается, когда API салона отклонил отмену
	ErrCancelRejected = errors.New("booking cancel rejected")

	// ErrSalonUnavailable возвращается, когда API салона недоступен
	ErrSalonUnavailable = errors.New("salon api unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
