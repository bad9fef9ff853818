package schedule

import (
	"sort"
	"time"

	"guesthouse-ops-service/internal/domain/entity"
	"guesthouse-ops-service/pkg/utils"
)

// BuildReservationSummary groups views into today's check-ins, check-outs,
// staying guests and the upcoming check-ins after today, each deduplicated
func BuildReservationSummary(views []entity.ReservationView, today time.Time) entity.ReservationSummary {
	day := utils.FormatAPIDate(today)
	var summary entity.ReservationSummary

	var upcoming []entity.ReservationView
	for _, view := range views {
		in, out := dateOnly(view.CheckIn), dateOnly(view.CheckOut)
		switch {
		case in == day:
			summary.CheckIns = append(summary.CheckIns, view)
		case out == day:
			summary.CheckOuts = append(summary.CheckOuts, view)
		case in < day && out > day:
			summary.Staying = append(summary.Staying, view)
		case in > day && view.Status == entity.StatusUpcoming:
			upcoming = append(upcoming, view)
		}
	}

	summary.CheckIns = DedupeReservations(summary.CheckIns)
	summary.CheckOuts = DedupeReservations(summary.CheckOuts)
	summary.Staying = DedupeReservations(summary.Staying)
	summary.Upcoming = groupByCheckIn(DedupeReservations(upcoming))

	return summary
}

func groupByCheckIn(views []entity.ReservationView) []entity.UpcomingDay {
	index := make(map[string]int)
	var days []entity.UpcomingDay
	for _, view := range views {
		date := dateOnly(view.CheckIn)
		i, ok := index[date]
		if !ok {
			i = len(days)
			index[date] = i
			days = append(days, entity.UpcomingDay{Date: date})
		}
		days[i].Reservations = append(days[i].Reservations, view)
	}
	sort.SliceStable(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}
