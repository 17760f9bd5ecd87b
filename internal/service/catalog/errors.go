package catalog

import "errors"

var (
	// ErrSalonUnavailable возвращается, когда API салона недоступен
	ErrSalonUnavailable = errors.New("catalog: salon api unavailable")

	// ErrBranchRejected возвращается, когда API салона отклонил запрос
	// (например, филиал не существует)
	ErrBranchRejected = errors.New("catalog: branch rejected by salon api")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("catalog: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
