package schedule

import "guesthouse-ops-service/internal/domain/entity"

// Dedupe keeps the first element of every key, preserving order
func Dedupe[T any, K comparable](list []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(list))
	out := make([]T, 0, len(list))
	for _, item := range list {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, item)
	}
	return out
}

// DedupeReservations removes repeated bookings by id
func DedupeReservations(views []entity.ReservationView) []entity.ReservationView {
	return Dedupe(views, func(v entity.ReservationView) string { return v.ID })
}
