package templates

import (
	"fmt"
	"time"

	"guesthouse-ops-service/internal/domain/entity"
	"guesthouse-ops-service/pkg/utils"
)

// WellnessText renders the yoga and breakfast headcount for the morning after date
func WellnessText(date time.Time, count entity.ServiceCount) string {
	return fmt.Sprintf("[%s 요가·조식 안내]\n"+
		"🧘‍♀️ 모닝 요가 (8:30-9:30)\n"+
		"- 요가: %d명\n"+
		"\n"+
		"🍽️ 웰니스 조식 (9:30-10:30)\n"+
		"- 조식: %d명",
		utils.FormatDisplayDate(date), count.Yoga, count.Breakfast)
}
