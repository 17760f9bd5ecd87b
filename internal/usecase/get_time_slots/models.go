package get_time_slots

import "github.com/m04kA/SLN-BookingFlow/pkg/types"

// Request модель запроса на получение слотов времени
// Дата берётся из черновика: экран времени всегда показывает слоты
// для выбранной в флоу даты
type Request struct {
	DraftID string
}

// Response модель ответа со слотами, сгруппированными по времени суток
type Response struct {
	Date    string   // YYYY-MM-DD
	Buckets []Bucket // Morning, Afternoon, Evening
}

// Bucket группа слотов одной части дня
type Bucket struct {
	Title string
	Slots []Slot
}

// Slot один слот времени
type Slot struct {
	Display   string           // "08:00 AM"
	Time      types.TimeString // "08:00"
	Available bool
	Selected  bool
}
