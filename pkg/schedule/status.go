package schedule

import (
	"math"
	"time"

	"guesthouse-ops-service/internal/domain/entity"
	"guesthouse-ops-service/pkg/utils"
)

// ClassifyStatus assigns a booking its status relative to today.
// Precedence is checkIn, checkOut, staying, then upcoming.
func ClassifyStatus(checkIn, checkOut string, today time.Time) entity.ReservationStatus {
	day := utils.FormatAPIDate(today)
	in, out := dateOnly(checkIn), dateOnly(checkOut)

	switch {
	case in == day:
		return entity.StatusCheckIn
	case out == day:
		return entity.StatusCheckOut
	case in < day && out > day:
		return entity.StatusStaying
	default:
		return entity.StatusUpcoming
	}
}

// Nights returns the length of a stay, never less than one
func Nights(checkIn, checkOut string) int {
	days, err := utils.DaysBetween(dateOnly(checkIn), dateOnly(checkOut))
	if err != nil {
		return 1
	}
	nights := int(math.Ceil(days))
	if nights < 1 {
		return 1
	}
	return nights
}

// dateOnly trims timestamps such as "2024-09-08T15:00:00" to their ISO date
func dateOnly(value string) string {
	if len(value) > len(utils.APIDateLayout) {
		return value[:len(utils.APIDateLayout)]
	}
	return value
}
