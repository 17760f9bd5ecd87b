package domain

import "time"

// CalendarDay is a single cell of a rendered month grid.
// Leading/trailing days of adjacent months complete the week rows but
// carry IsCurrentMonth=false and are never selectable on their own.
type CalendarDay struct {
	Day            int
	Month          time.Month
	Year           int
	IsCurrentMonth bool
}

// Date returns the midnight time.Time of the day in the given location.
func (d CalendarDay) Date(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// MonthGrid builds the full week grid for a month: leading days of the
// previous month pad the first row to a Sunday start, trailing days of the
// next month complete the last row. The result length is always a multiple
// of seven.
func MonthGrid(year int, month time.Month) []CalendarDay {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lead := int(first.Weekday()) // Sunday = 0

	days := make([]CalendarDay, 0, 42)

	for i := lead; i > 0; i-- {
		d := first.AddDate(0, 0, -i)
		days = append(days, CalendarDay{
			Day:   d.Day(),
			Month: d.Month(),
			Year:  d.Year(),
		})
	}

	lastDay := first.AddDate(0, 1, -1).Day()
	for day := 1; day <= lastDay; day++ {
		days = append(days, CalendarDay{
			Day:            day,
			Month:          month,
			Year:           year,
			IsCurrentMonth: true,
		})
	}

	next := first.AddDate(0, 1, 0)
	for len(days)%7 != 0 {
		days = append(days, CalendarDay{
			Day:   next.Day(),
			Month: next.Month(),
			Year:  next.Year(),
		})
		next = next.AddDate(0, 0, 1)
	}

	return days
}

// IsPast reports whether the day falls strictly before today's calendar
// date. Time of day is ignored on both sides.
func IsPast(day CalendarDay, today time.Time) bool {
	dayDate := day.Date(today.Location())
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	return dayDate.Before(todayDate)
}

// effectiveHorizonMonth clamps the configured horizon to today's month when
// the year has already moved past it, so the current month always stays
// visible.
func effectiveHorizonMonth(today time.Time, horizonMonth time.Month) time.Month {
	if today.Month() > horizonMonth {
		return today.Month()
	}
	return horizonMonth
}

// IsSelectable reports whether the user may pick this day: it must belong
// to the rendered month, not be in the past, and stay within the
// navigation horizon of the current year.
func IsSelectable(day CalendarDay, today time.Time, horizonMonth time.Month) bool {
	if !day.IsCurrentMonth {
		return false
	}
	if IsPast(day, today) {
		return false
	}
	if day.Year != today.Year() {
		return false
	}
	return day.Month <= effectiveHorizonMonth(today, horizonMonth)
}

// CanGoPrevMonth reports whether backward navigation from the visible
// month is allowed. Navigation stops at the month containing today.
func CanGoPrevMonth(year int, month time.Month, today time.Time) bool {
	if year > today.Year() {
		return true
	}
	if year < today.Year() {
		return false
	}
	return month > today.Month()
}

// CanGoNextMonth reports whether forward navigation from the visible month
// is allowed. Navigation stops at the horizon month of the current year.
func CanGoNextMonth(year int, month time.Month, today time.Time, horizonMonth time.Month) bool {
	if year < today.Year() {
		return true
	}
	if year > today.Year() {
		return false
	}
	return month < effectiveHorizonMonth(today, horizonMonth)
}
