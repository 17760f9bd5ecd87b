package get_time_slots

import (
	"github.com/m04kA/SLN-BookingFlow/internal/domain"
	"github.com/m04kA/SLN-BookingFlow/pkg/types"
)

// buildBuckets раскладывает фиксированный каталог слотов по карте занятости.
// Слот блокируется только явным нулём ёмкости: отсутствие ключа в карте
// означает доступность
func buildBuckets(occupancy domain.OccupancyMap, selected types.TimeString) ([]Bucket, error) {
	catalog := domain.Buckets()
	buckets := make([]Bucket, 0, len(catalog))

	for _, b := range catalog {
		slots := make([]Slot, 0, len(b.Slots))

		for _, display := range b.Slots {
			time24, err := domain.To24Hour(display)
			if err != nil {
				return nil, err
			}

			available, err := domain.IsSlotAvailable(occupancy, display)
			if err != nil {
				return nil, err
			}

			slots = append(slots, Slot{
				Display:   display,
				Time:      time24,
				Available: available,
				Selected:  !selected.IsZero() && selected == time24,
			})
		}

		buckets = append(buckets, Bucket{
			Title: b.Title,
			Slots: slots,
		})
	}

	return buckets, nil
}
