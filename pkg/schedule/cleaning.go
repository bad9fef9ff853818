package schedule

import (
	"time"

	"guesthouse-ops-service/internal/domain/entity"
	"guesthouse-ops-service/pkg/utils"
)

// SplitDays normalizes the feed for the day before, the day of and the day after date
func SplitDays(feed *entity.ScheduleFeed, date time.Time) (yesterday, today, tomorrow entity.Occupancy) {
	yesterday = NormalizeDay(feed, utils.FormatAPIDate(utils.AddDays(date, -1)))
	today = NormalizeDay(feed, utils.FormatAPIDate(date))
	tomorrow = NormalizeDay(feed, utils.FormatAPIDate(utils.AddDays(date, 1)))
	return yesterday, today, tomorrow
}

// AnalyzeCleaning evaluates the cleaning predicates for every numeric room.
// Each predicate is computed on its own; a room may appear in several lists.
func AnalyzeCleaning(yesterday, today, tomorrow entity.Occupancy) entity.CleaningReport {
	report := entity.CleaningReport{
		CleaningRooms:         []string{},
		HotTubRooms:           []string{},
		ConsecutiveStayRooms:  []string{},
		TomorrowExpectedRooms: []string{},
	}

	for _, room := range unionRooms(yesterday, today, tomorrow) {
		prev, curr, next := yesterday[room], today[room], tomorrow[room]

		if needsCleaning(prev, curr) {
			report.CleaningRooms = append(report.CleaningRooms, room)
		}
		if prev != nil && prev.HasServiceOptions && !IsSameGuest(prev, curr) {
			report.HotTubRooms = append(report.HotTubRooms, room)
		}
		if IsSameGuest(prev, curr) {
			report.ConsecutiveStayRooms = append(report.ConsecutiveStayRooms, room)
		}
		if curr != nil && (next == nil || !IsSameGuest(curr, next)) {
			report.TomorrowExpectedRooms = append(report.TomorrowExpectedRooms, room)
		}
	}

	return report
}

// needsCleaning is true on guest turnover or when the room was left empty
func needsCleaning(prev, curr *entity.OccupancyFact) bool {
	if prev == nil {
		return false
	}
	if curr == nil {
		return true
	}
	return !IsSameGuest(prev, curr)
}

func unionRooms(days ...entity.Occupancy) []string {
	seen := make(map[string]struct{})
	var rooms []string
	for _, day := range days {
		for room := range day {
			if !utils.IsNumericRoom(room) {
				continue
			}
			if _, ok := seen[room]; ok {
				continue
			}
			seen[room] = struct{}{}
			rooms = append(rooms, room)
		}
	}
	sortNumeric(rooms)
	return rooms
}
