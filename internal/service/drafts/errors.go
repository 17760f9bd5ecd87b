package drafts

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("drafts: draft not found")

	// ErrBranchNotSelected возвращается при попытке шага, требующего выбранный филиал
	ErrBranchNotSelected = errors.New("drafts: branch must be selected first")

	// ErrStaffNotSelected возвращается при попытке шага, требующего выбранного мастера
	ErrStaffNotSelected = errors.New("drafts: staff must be selected first")

	// ErrNoServicesSelected возвращается при выборе даты без единой услуги
	ErrNoServicesSelected = errors.New("drafts: at least one service must be selected first")

	// ErrDateNotSelected возвращается при выборе времени без даты
	ErrDateNotSelected = errors.New("drafts: date must be selected first")

	// ErrStaffNotFound возвращается, когда мастер не найден в филиале
	ErrStaffNotFound = errors.New("drafts: staff not found in branch")

	// ErrServiceNotFound возвращается, когда услуга не найдена в филиале
	ErrServiceNotFound = errors.New("drafts: service not found in branch")

	// ErrDateNotSelectable возвращается для прошедшей даты или даты за горизонтом навигации
	ErrDateNotSelectable = errors.New("drafts: date is not selectable")

	// ErrTooManyServices возвращается при превышении лимита услуг в черновике
	ErrTooManyServices = errors.New("drafts: too many services selected")

	// ErrSalonUnavailable возвращается, когда API салона недоступен
	// Пользователю показывается retry, автоматических повторов нет
	ErrSalonUnavailable = errors.New("drafts: salon api unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("drafts: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("drafts: internal error")
)
