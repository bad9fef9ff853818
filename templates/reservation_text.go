package templates

import (
	"fmt"
	"strings"
	"time"

	"guesthouse-ops-service/internal/domain/entity"
	"guesthouse-ops-service/pkg/utils"
)

// ReservationText renders the daily reservation list shared with staff.
// Empty sections are omitted.
func ReservationText(date time.Time, summary entity.ReservationSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[공유] %s 예약 리스트\n\n", utils.FormatKoreanDate(date))

	sections := []struct {
		title string
		views []entity.ReservationView
	}{
		{"[1] 체크인", summary.CheckIns},
		{"[2] 체크아웃", summary.CheckOuts},
		{"[3] 재실", summary.Staying},
	}
	for _, section := range sections {
		if len(section.views) == 0 {
			continue
		}
		b.WriteString(section.title + "\n")
		for _, view := range section.views {
			b.WriteString(reservationLine(view))
		}
		b.WriteString("\n")
	}

	if len(summary.Upcoming) > 0 {
		b.WriteString("[4] 주간현황\n")
		for _, day := range summary.Upcoming {
			b.WriteString(utils.FormatShortDate(day.Date) + "\n")
			for _, view := range day.Reservations {
				b.WriteString(reservationLine(view))
			}
		}
	}

	return b.String()
}

// reservationLine renders " - name/roomName(roomNumber)/N박(~MM.DD)[/services]"
func reservationLine(view entity.ReservationView) string {
	line := fmt.Sprintf(" - %s/%s(%s)/%d박(~%s)",
		view.CustomerName, view.RoomName, view.RoomNumber, view.Nights, utils.FormatMonthDay(view.CheckOut))
	if len(view.Services) > 0 {
		line += "/" + strings.Join(view.Services, ",")
	}
	return line + "\n"
}
