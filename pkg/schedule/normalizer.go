package schedule

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"guesthouse-ops-service/internal/domain/entity"
	"guesthouse-ops-service/pkg/utils"
)

const unknownRoomNumber = "?"

// RoomNumber maps a room type display name to its room number, "WR", "PET" or ""
func RoomNumber(lodgmentTypeName string) string {
	return utils.RoomNumberFromName(lodgmentTypeName)
}

// NormalizeDay derives who occupies each room on date (YYYY-MM-DD).
// Missing days, units or bookings leave the room vacant; the first room type
// mapped to a number wins.
func NormalizeDay(feed *entity.ScheduleFeed, date string) entity.Occupancy {
	occupancy := make(entity.Occupancy)

	types := feed.Types()
	for i := range types {
		lodgmentType := &types[i]
		room := RoomNumber(lodgmentType.LodgmentTypeName)
		if room == "" {
			continue
		}
		if _, seen := occupancy[room]; seen {
			continue
		}
		occupancy[room] = factFor(lodgmentType.DayFor(date).FirstLodgment().FirstConfirmed())
	}

	return occupancy
}

// Occupant returns the effective booking of room on date: the first confirmed
// booking of the first unit of the first room type numbered room
func Occupant(feed *entity.ScheduleFeed, room, date string) *entity.Reservation {
	types := feed.Types()
	for i := range types {
		if RoomNumber(types[i].LodgmentTypeName) == room {
			return types[i].DayFor(date).FirstLodgment().FirstConfirmed()
		}
	}
	return nil
}

func factFor(reservation *entity.Reservation) *entity.OccupancyFact {
	if reservation == nil {
		return nil
	}

	addOns := reservation.AddOns()
	labels := make([]string, 0, len(addOns))
	for _, option := range addOns {
		if label := option.Label(); label != "" {
			labels = append(labels, label)
		}
	}

	return &entity.OccupancyFact{
		GuestName:           reservation.UserInfo.Name,
		GuestPhone:          reservation.UserInfo.Phone,
		HasServiceOptions:   len(addOns) > 0,
		ServiceOptionLabels: labels,
	}
}

// NumericRooms returns the numeric room keys of o in ascending numeric order
func NumericRooms(o entity.Occupancy) []string {
	rooms := make([]string, 0, len(o))
	for room := range o {
		if utils.IsNumericRoom(room) {
			rooms = append(rooms, room)
		}
	}
	sortNumeric(rooms)
	return rooms
}

func sortNumeric(rooms []string) {
	sort.SliceStable(rooms, func(i, j int) bool {
		a, _ := strconv.Atoi(rooms[i])
		b, _ := strconv.Atoi(rooms[j])
		return a < b
	})
}

// BuildReservationViews flattens every booking of the feed into display views,
// classifying each one against today
func BuildReservationViews(feed *entity.ScheduleFeed, today time.Time) []entity.ReservationView {
	var views []entity.ReservationView

	types := feed.Types()
	for i := range types {
		lodgmentType := &types[i]
		roomNumber := RoomNumber(lodgmentType.LodgmentTypeName)
		if roomNumber == "" {
			roomNumber = unknownRoomNumber
		}
		roomName := utils.RoomLabelFromName(lodgmentType.LodgmentTypeName)

		for d := range lodgmentType.Days {
			for _, reservation := range lodgmentType.Days[d].AllReservations() {
				views = append(views, entity.ReservationView{
					ID:           reservation.ID,
					CustomerName: reservation.UserInfo.Name,
					Phone:        reservation.UserInfo.Phone,
					CheckIn:      reservation.CheckIn,
					CheckOut:     reservation.CheckOut,
					RoomNumber:   roomNumber,
					RoomName:     roomName,
					RoomType:     lodgmentType.LodgmentTypeName,
					Guests:       reservation.Headcount(),
					Status:       ClassifyStatus(reservation.CheckIn, reservation.CheckOut, today),
					Notes:        reservation.MemoText(),
					Services:     FormServices(reservation.CustomFormInputs()),
					Nights:       Nights(reservation.CheckIn, reservation.CheckOut),
					Platform:     reservation.PlatformName,
				})
			}
		}
	}

	return views
}

// FormServices renders the answered custom form inputs as "title: value",
// skipping blank answers and check-in time questions
func FormServices(inputs []entity.CustomFormInput) []string {
	var services []string
	for _, input := range inputs {
		if strings.TrimSpace(input.Value) == "" || strings.Contains(input.Title, utils.TitleCheckIn) {
			continue
		}
		services = append(services, utils.ShortFormTitle(input.Title)+": "+input.Value)
	}
	return services
}
