package salonapi

import "errors"

var (
	// ErrUnavailable возвращается, когда API салона недоступен (сеть, timeout, 5xx)
	// Вызывающая сторона показывает пользователю retry, автоматических повторов нет
	ErrUnavailable = errors.New("salonapi client: service unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	// (не-JSON, неожиданная форма данных, невалидные ключи времени)
	ErrInvalidResponse = errors.New("salonapi client: invalid response")

	// ErrRejected возвращается, когда API ответил status=false
	// Текст причины пробрасывается в обёртке ошибки
	ErrRejected = errors.New("salonapi client: request rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("salonapi client: internal error")
)
