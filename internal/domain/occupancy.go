package domain

import "github.com/m04kA/SLN-BookingFlow/pkg/types"

// OccupancyMap maps 24h "HH:mm" keys to remaining capacity, as returned by
// the salon availability endpoint for one (branch, staff, services, date)
// tuple. It is a snapshot: replaced wholesale per fetch, never mutated.
type OccupancyMap map[types.TimeString]int

// IsSlotAvailable reports whether a 12h display slot is bookable against
// the occupancy snapshot. Only an explicit zero-capacity entry blocks a
// slot; missing keys mean available (open-world default).
func IsSlotAvailable(m OccupancyMap, displaySlot string) (bool, error) {
	key, err := To24Hour(displaySlot)
	if err != nil {
		return false, err
	}

	capacity, ok := m[key]
	if ok && capacity == 0 {
		return false, nil
	}
	return true, nil
}
