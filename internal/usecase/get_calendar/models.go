package get_calendar

import "time"

// Request модель запроса на получение календарной сетки месяца
// Year и Month опциональны: нулевые значения означают текущий месяц
type Request struct {
	DraftID string
	Year    int
	Month   int
}

// Response модель ответа с сеткой месяца и флагами навигации
type Response struct {
	Year      int
	Month     time.Month
	Days      []Day
	CanGoPrev bool
	CanGoNext bool
}

// Day одна ячейка сетки месяца
// Дни соседних месяцев дополняют недельные ряды и никогда не выбираемы
type Day struct {
	Day            int
	Month          time.Month
	Year           int
	IsCurrentMonth bool
	IsToday        bool
	IsSelectable   bool
}
