package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/m04kA/SLN-BookingFlow/pkg/types"
)

// ErrInvalidDisplayTime is returned when a 12h display string cannot be parsed
var ErrInvalidDisplayTime = errors.New("invalid display time, expected hh:mm AM/PM")

// TimeBucket groups bookable time-of-day slots by part of day.
// Slots are 12h display strings ("hh:mm AM/PM"), strictly increasing
// within a bucket; buckets themselves follow day order.
type TimeBucket struct {
	Title string
	Slots []string
}

var timeBuckets = []TimeBucket{
	{
		Title: "Morning",
		Slots: []string{
			"08:00 AM", "08:15 AM", "08:30 AM", "08:45 AM",
			"09:00 AM", "09:15 AM", "09:30 AM", "09:45 AM",
			"10:00 AM", "10:15 AM", "10:30 AM", "10:45 AM",
			"11:00 AM", "11:15 AM", "11:30 AM", "11:45 AM",
		},
	},
	{
		Title: "Afternoon",
		Slots: []string{
			"12:00 PM", "12:15 PM", "12:30 PM", "12:45 PM",
			"01:00 PM", "01:15 PM", "01:30 PM", "01:45 PM",
			"02:00 PM", "02:15 PM", "02:30 PM", "02:45 PM",
			"03:00 PM", "03:15 PM", "03:30 PM", "03:45 PM",
		},
	},
	{
		Title: "Evening",
		Slots: []string{
			"04:00 PM", "04:15 PM", "04:30 PM", "04:45 PM",
			"05:00 PM", "05:15 PM", "05:30 PM", "05:45 PM",
			"06:00 PM", "06:15 PM", "06:30 PM", "06:45 PM",
			"07:00 PM", "07:15 PM", "07:30 PM", "07:45 PM",
		},
	},
}

// Buckets returns the fixed time-slot catalog in day order.
// Callers must not mutate the returned slices.
func Buckets() []TimeBucket {
	return timeBuckets
}

// To24Hour converts a 12h display string ("hh:mm AM/PM") to a 24h TimeString.
// 12 AM maps to 00, 12 PM stays 12, any other PM hour gets +12.
func To24Hour(display string) (types.TimeString, error) {
	parts := strings.Fields(strings.TrimSpace(display))
	if len(parts) != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidDisplayTime, display)
	}

	period := strings.ToUpper(parts[1])
	if period != "AM" && period != "PM" {
		return "", fmt.Errorf("%w: %q", ErrInvalidDisplayTime, display)
	}

	hm := strings.Split(parts[0], ":")
	if len(hm) != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidDisplayTime, display)
	}

	hour, err := strconv.Atoi(hm[0])
	if err != nil || hour < 1 || hour > 12 {
		return "", fmt.Errorf("%w: %q", ErrInvalidDisplayTime, display)
	}

	minute, err := strconv.Atoi(hm[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("%w: %q", ErrInvalidDisplayTime, display)
	}

	switch {
	case period == "AM" && hour == 12:
		hour = 0
	case period == "PM" && hour != 12:
		hour += 12
	}

	return types.TimeString(fmt.Sprintf("%02d:%02d", hour, minute)), nil
}

// To12Hour converts a 24h TimeString back to the display format.
// Hour 0 maps to 12 AM, hour 12 to 12 PM.
func To12Hour(value types.TimeString) (string, error) {
	total, err := value.TotalMinutes()
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDisplayTime, value)
	}

	hour := total / 60
	minute := total % 60

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}

	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}

	return fmt.Sprintf("%02d:%02d %s", displayHour, minute, period), nil
}
