package schedule

import "guesthouse-ops-service/internal/domain/entity"

// IsSameGuest reports whether two occupancy facts describe the same guest.
// Booking ids are not compared: one stay may be split into per-day bookings.
func IsSameGuest(a, b *entity.OccupancyFact) bool {
	if a == nil || b == nil {
		return false
	}
	return a.GuestName == b.GuestName && a.GuestPhone == b.GuestPhone
}
