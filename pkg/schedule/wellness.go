package schedule

import (
	"strings"
	"time"

	"guesthouse-ops-service/internal/domain/entity"
	"guesthouse-ops-service/pkg/utils"
)

// CountServices sums the yoga and breakfast headcount served the morning after date
func CountServices(feed *entity.ScheduleFeed, date time.Time) entity.ServiceCount {
	var total entity.ServiceCount
	forEachBooking(feed, utils.FormatAPIDate(date), func(_ *entity.Lodgment, reservation *entity.Reservation) {
		count, _ := ServicesFor(reservation, date)
		total = total.Add(count)
	})
	return total
}

// AnalyzeWellness builds the wellness report of date: totals, per-booking
// details and occupancy stats of the numeric rooms
func AnalyzeWellness(feed *entity.ScheduleFeed, date time.Time) entity.WellnessReport {
	day := utils.FormatAPIDate(date)
	report := entity.WellnessReport{
		Date:    day,
		Details: []entity.ServiceDetail{},
	}

	forEachBooking(feed, day, func(lodgment *entity.Lodgment, reservation *entity.Reservation) {
		count, source := ServicesFor(reservation, date)
		if count.IsZero() {
			return
		}
		report.Total = report.Total.Add(count)
		report.Details = append(report.Details, entity.ServiceDetail{
			ReservationID: reservation.ID,
			LodgmentName:  lodgment.Name,
			GuestName:     reservation.UserInfo.Name,
			Platform:      reservation.PlatformName,
			Source:        source,
			ServiceCount:  count,
		})
	})

	yesterday := utils.FormatAPIDate(utils.AddDays(date, -1))
	types := feed.Types()
	for i := range types {
		lodgmentType := &types[i]
		if !utils.IsNumericRoom(RoomNumber(lodgmentType.LodgmentTypeName)) {
			continue
		}

		if left := lodgmentType.DayFor(yesterday).FirstLodgment().FirstConfirmed(); left != nil && dateOnly(left.CheckOut) == day {
			report.CheckOuts += guestCount(left)
		}

		occupant := lodgmentType.DayFor(day).FirstLodgment().FirstConfirmed()
		if occupant == nil {
			continue
		}
		guests := guestCount(occupant)
		report.RoomsOccupied++
		report.TotalGuests += guests
		if dateOnly(occupant.CheckIn) == day {
			report.CheckIns += guests
		}
	}

	return report
}

// ServicesFor returns the yoga and breakfast count one booking contributes to date.
// Custom form answers dated the day after date take precedence; add-on options are
// only consulted when the form gave nothing usable.
func ServicesFor(reservation *entity.Reservation, date time.Time) (entity.ServiceCount, entity.ServiceSource) {
	if count, ok := countFromForm(reservation.CustomFormInputs(), date); ok {
		return count, entity.SourceCustomForm
	}
	return countFromAddOns(reservation.AddOns()), entity.SourceAddOn
}

func countFromForm(inputs []entity.CustomFormInput, date time.Time) (entity.ServiceCount, bool) {
	var count entity.ServiceCount
	usable := false

	if n, ok := formCount(inputs, utils.TitleBreakfast, date); ok {
		count.Breakfast = n
		usable = true
	}
	if n, ok := formCount(inputs, utils.TitleYoga, date); ok {
		count.Yoga = n
		usable = true
	}

	return count, usable
}

// formCount reads the first answered input whose title contains title
func formCount(inputs []entity.CustomFormInput, title string, date time.Time) (int, bool) {
	for _, input := range inputs {
		if !strings.Contains(input.Title, title) || strings.TrimSpace(input.Value) == "" {
			continue
		}
		if !utils.MatchesServiceDate(input.Value, date) {
			return 0, false
		}
		return utils.ParsePersonCount(input.Value)
	}
	return 0, false
}

func countFromAddOns(options []entity.AddOnOption) entity.ServiceCount {
	var count entity.ServiceCount
	for _, option := range options {
		label := option.Label()
		yoga := strings.Contains(label, utils.TitleYoga)
		breakfast := strings.Contains(label, utils.TitleBreakfast)

		switch {
		case isBundle(label) || (yoga && breakfast):
			count.Yoga += option.Count
			count.Breakfast += option.Count
		case yoga:
			count.Yoga += option.Count
		case breakfast:
			count.Breakfast += option.Count
		}
	}
	return count
}

func isBundle(label string) bool {
	for _, name := range utils.BundlePackages {
		if strings.Contains(label, name) {
			return true
		}
	}
	return false
}

// guestCount is the booker plus one per add-person option
func guestCount(reservation *entity.Reservation) int {
	return 1 + len(reservation.AddPersonOptions)
}

func forEachBooking(feed *entity.ScheduleFeed, date string, fn func(*entity.Lodgment, *entity.Reservation)) {
	types := feed.Types()
	for i := range types {
		day := types[i].DayFor(date)
		if day == nil {
			continue
		}
		for l := range day.Lodgments {
			lodgment := &day.Lodgments[l]
			for r := range lodgment.Reservations {
				fn(lodgment, &lodgment.Reservations[r])
			}
		}
	}
}
