package domain

import "time"

// Time and date format constants
const (
	TimeFormat     = "15:04"               // HH:MM
	DateFormat     = "2006-01-02"          // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 15:04:05" // format used by the salon API for start_date_time
)

// DefaultHorizonMonth is the last month of the current year reachable by
// calendar navigation when no value is configured.
const DefaultHorizonMonth = time.July

// Business validation constants
const (
	MaxServicesPerDraft = 10
	MaxNoteLength       = 500
	MaxGuestNameLength  = 100
	MaxGuestPhoneLength = 20
)
