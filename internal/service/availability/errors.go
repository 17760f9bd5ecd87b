package availability

import "errors"

var (
	// ErrSuperseded возвращается, когда ответ относится к запросу, который
	// уже вытеснен более новым запросом того же флоу, и свежий снимок ещё
	// не получен. Такой ответ отбрасывается и не показывается как ошибка
	ErrSuperseded = errors.New("availability: request superseded by a newer one")
)
