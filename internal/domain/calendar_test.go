package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthGrid_LeadingDays(t *testing.T) {
	// January 2025 starts on Wednesday: three December days pad the first row
	grid := MonthGrid(2025, time.January)
	require.Len(t, grid, 35)

	assert.Equal(t, CalendarDay{Day: 29, Month: time.December, Year: 2024}, grid[0])
	assert.Equal(t, CalendarDay{Day: 30, Month: time.December, Year: 2024}, grid[1])
	assert.Equal(t, CalendarDay{Day: 31, Month: time.December, Year: 2024}, grid[2])
	assert.Equal(t, CalendarDay{Day: 1, Month: time.January, Year: 2025, IsCurrentMonth: true}, grid[3])

	// The last row is padded with February days
	assert.Equal(t, CalendarDay{Day: 1, Month: time.February, Year: 2025}, grid[34])
}

func TestMonthGrid_NoPadding(t *testing.T) {
	// February 2026 starts on Sunday and spans exactly four weeks
	grid := MonthGrid(2026, time.February)
	require.Len(t, grid, 28)

	for _, day := range grid {
		assert.True(t, day.IsCurrentMonth)
		assert.Equal(t, time.February, day.Month)
	}
}

func TestMonthGrid_AlwaysMultipleOfSeven(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		grid := MonthGrid(2025, month)
		assert.Zero(t, len(grid)%7, "month %s", month)

		// The first grid day is always a Sunday
		first := grid[0].Date(time.UTC)
		assert.Equal(t, time.Sunday, first.Weekday(), "month %s", month)
	}
}

func TestMonthGrid_EachTargetDayOnce(t *testing.T) {
	grid := MonthGrid(2024, time.February) // leap-year February
	seen := make(map[int]bool)

	for _, day := range grid {
		if day.IsCurrentMonth {
			assert.False(t, seen[day.Day], "day %d seen twice", day.Day)
			seen[day.Day] = true
		}
	}
	assert.Len(t, seen, 29)
}

func TestIsPast(t *testing.T) {
	today := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	assert.True(t, IsPast(CalendarDay{Day: 14, Month: time.June, Year: 2025}, today))
	assert.False(t, IsPast(CalendarDay{Day: 15, Month: time.June, Year: 2025}, today))
	assert.False(t, IsPast(CalendarDay{Day: 16, Month: time.June, Year: 2025}, today))
	assert.True(t, IsPast(CalendarDay{Day: 31, Month: time.December, Year: 2024}, today))
}

func TestIsSelectable(t *testing.T) {
	today := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	horizon := time.July

	tests := []struct {
		name string
		day  CalendarDay
		want bool
	}{
		{"past day", CalendarDay{Day: 10, Month: time.June, Year: 2025, IsCurrentMonth: true}, false},
		{"today", CalendarDay{Day: 15, Month: time.June, Year: 2025, IsCurrentMonth: true}, true},
		{"future in month", CalendarDay{Day: 20, Month: time.June, Year: 2025, IsCurrentMonth: true}, true},
		{"horizon month", CalendarDay{Day: 1, Month: time.July, Year: 2025, IsCurrentMonth: true}, true},
		{"beyond horizon", CalendarDay{Day: 1, Month: time.August, Year: 2025, IsCurrentMonth: true}, false},
		{"next year", CalendarDay{Day: 1, Month: time.January, Year: 2026, IsCurrentMonth: true}, false},
		{"padding day", CalendarDay{Day: 20, Month: time.June, Year: 2025, IsCurrentMonth: false}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSelectable(tt.day, today, horizon))
		})
	}
}

func TestIsSelectable_HorizonClampedToCurrentMonth(t *testing.T) {
	// The year moved past the configured horizon: the current month stays reachable
	today := time.Date(2025, 10, 5, 10, 0, 0, 0, time.UTC)
	horizon := time.July

	assert.True(t, IsSelectable(CalendarDay{Day: 10, Month: time.October, Year: 2025, IsCurrentMonth: true}, today, horizon))
	assert.False(t, IsSelectable(CalendarDay{Day: 10, Month: time.November, Year: 2025, IsCurrentMonth: true}, today, horizon))
}

func TestMonthNavigation(t *testing.T) {
	today := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	horizon := time.July

	// Backwards navigation stops at the month containing today
	assert.False(t, CanGoPrevMonth(2025, time.June, today))
	assert.True(t, CanGoPrevMonth(2025, time.July, today))

	// Forward navigation stops at the horizon month
	assert.True(t, CanGoNextMonth(2025, time.June, today, horizon))
	assert.False(t, CanGoNextMonth(2025, time.July, today, horizon))
}
