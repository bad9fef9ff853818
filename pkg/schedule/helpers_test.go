package schedule

import (
	"time"

	"guesthouse-ops-service/internal/domain/entity"
)

var seoul = time.FixedZone("KST", 9*60*60)

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, seoul)
	if err != nil {
		panic(err)
	}
	return t
}

func booking(id, name, phone, checkIn, checkOut string) entity.Reservation {
	return entity.Reservation{
		ID:       id,
		UserInfo: entity.UserInfo{Name: name, Phone: phone},
		Status:   "confirmed",
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}
}

func roomType(name string, days ...entity.Day) entity.LodgmentType {
	return entity.LodgmentType{LodgmentTypeID: name, LodgmentTypeName: name, Days: days}
}

func dayRecord(date string, reservations ...entity.Reservation) entity.Day {
	return entity.Day{
		Date:      date,
		Lodgments: []entity.Lodgment{{LodgmentID: "l-" + date, Name: "unit", Reservations: reservations}},
	}
}
