package get_calendar

import (
	getCalendar "github.com/m04kA/SLN-BookingFlow/internal/usecase/get_calendar"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Year      int           `json:"year"`
	Month     int           `json:"month"`
	Days      []CalendarDay `json:"days"`
	CanGoPrev bool          `json:"canGoPrev"`
	CanGoNext bool          `json:"canGoNext"`
}

// CalendarDay одна ячейка сетки месяца
type CalendarDay struct {
	Day            int  `json:"day"`
	Month          int  `json:"month"`
	Year           int  `json:"year"`
	IsCurrentMonth bool `json:"isCurrentMonth"`
	IsToday        bool `json:"isToday"`
	IsSelectable   bool `json:"isSelectable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	days := make([]CalendarDay, len(resp.Days))
	for i, d := range resp.Days {
		days[i] = CalendarDay{
			Day:            d.Day,
			Month:          int(d.Month),
			Year:           d.Year,
			IsCurrentMonth: d.IsCurrentMonth,
			IsToday:        d.IsToday,
			IsSelectable:   d.IsSelectable,
		}
	}

	return &CalendarResponse{
		Year:      resp.Year,
		Month:     int(resp.Month),
		Days:      days,
		CanGoPrev: resp.CanGoPrev,
		CanGoNext: resp.CanGoNext,
	}
}
