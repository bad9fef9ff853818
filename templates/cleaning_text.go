package templates

import (
	"fmt"
	"strings"
	"time"

	"guesthouse-ops-service/internal/domain/entity"
	"guesthouse-ops-service/pkg/utils"
)

const emptyList = "없음"

// CleaningText renders the cleaning summary shared with housekeeping
func CleaningText(date time.Time, report entity.CleaningReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s 객실청소 사항 공유]\n", utils.FormatDisplayDate(date))
	fmt.Fprintf(&b, "- 청소할 객실 : %s\n", joinRooms(report.CleaningRooms))
	fmt.Fprintf(&b, "- 핫텁 : %s\n", joinRooms(report.HotTubRooms))
	fmt.Fprintf(&b, "- 연박 고객님 : %s\n", joinRooms(report.ConsecutiveStayRooms))
	fmt.Fprintf(&b, "- 내일 예상 객실 : %s", joinRooms(report.TomorrowExpectedRooms))
	return b.String()
}

func joinRooms(rooms []string) string {
	if len(rooms) == 0 {
		return emptyList
	}
	return strings.Join(rooms, ", ")
}
