package get_time_slots

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("get_time_slots: draft not found")

	// ErrBranchNotSelected возвращается, когда в черновике не выбран филиал
	ErrBranchNotSelected = errors.New("get_time_slots: branch is not selected")

	// ErrStaffNotSelected возвращается, когда в черновике не выбран мастер
	ErrStaffNotSelected = errors.New("get_time_slots: staff is not selected")

	// ErrNoServicesSelected возвращается, когда в черновике нет услуг
	ErrNoServicesSelected = errors.New("get_time_slots: no services selected")

	// ErrDateNotSelected возвращается, когда в черновике не выбрана дата
	ErrDateNotSelected = errors.New("get_time_slots: date is not selected")

	// ErrStaleRequest возвращается, когда запрос вытеснен более новым
	// и свежего снимка ещё нет
	ErrStaleRequest = errors.New("get_time_slots: superseded by a newer request")

	// ErrSalonUnavailable возвращается, когда API салона недоступен
	ErrSalonUnavailable = errors.New("get_time_slots: salon api unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_time_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_time_slots: internal error")
)
