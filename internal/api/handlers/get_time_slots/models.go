package get_time_slots

import (
	getTimeSlots "github.com/m04kA/SLN-BookingFlow/internal/usecase/get_time_slots"
)

// TimeSlotsResponse HTTP response model
type TimeSlotsResponse struct {
	Date    string       `json:"date"`
	Buckets []TimeBucket `json:"buckets"`
}

// TimeBucket группа слотов одной части дня
type TimeBucket struct {
	Title string     `json:"title"`
	Slots []TimeSlot `json:"slots"`
}

// TimeSlot один слот времени
type TimeSlot struct {
	Display   string `json:"display"` // "08:00 AM"
	Time      string `json:"time"`    // "08:00"
	Available bool   `json:"available"`
	Selected  bool   `json:"selected"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTimeSlots.Response) *TimeSlotsResponse {
	buckets := make([]TimeBucket, len(resp.Buckets))
	for i, b := range resp.Buckets {
		slots := make([]TimeSlot, len(b.Slots))
		for j, s := range b.Slots {
			slots[j] = TimeSlot{
				Display:   s.Display,
				Time:      s.Time.String(),
				Available: s.Available,
				Selected:  s.Selected,
			}
		}
		buckets[i] = TimeBucket{
			Title: b.Title,
			Slots: slots,
		}
	}

	return &TimeSlotsResponse{
		Date:    resp.Date,
		Buckets: buckets,
	}
}
