package templates

import (
	"fmt"

	"guesthouse-ops-service/internal/domain/entity"
)

const checkInMessageFormat = "안녕하세요 에가톳입니다 :) \n\n" +
	"체크인 시간이 마감되어 셀프체크인 관련 내용 전송드립니다!\n\n" +
	"고객님이 묵으실 객실은 %d번(%s, %s) 캐빈 입니다. \n" +
	"다른 객실과 착오가 없도록 입간판 확인 부탁드립니다!\n\n" +
	"자차 이용시 묵으시는 각 캐빈별로 야외 마당에 후면 주차가 가능하시니 참고 부탁드립니다.\n\n" +
	"문은 개방되어 있는 상태이고, 열쇠는 객실 선반에 비치되어 있습니다. \n\n" +
	"객실 내부에 캐빈 이용 안내서가 마련되어 있습니다. 반드시 참고 부탁드립니다\n\n" +
	"* 공용구간에 히마 (5개월 강아지/새로운사람과 강아지에 흥미도가 높은 편) 가 상주하고 있습니다. " +
	"공용구간 내부 들어 가실 경우, 유의 부탁드립니다:)\n\n" +
	"묵으시는 객실 입간판 사진 첨부드립니다. 감사합니다 :)\n\n" +
	"문의처 :  %s\n" +
	"(부가서비스 이용관련 내용 전달을 위해 전화드릴 예정입니다)"

// CheckInMessage renders the self check-in notice sent to a room's guest
func CheckInMessage(room entity.Room, contact string) string {
	return fmt.Sprintf(checkInMessageFormat, room.ID, room.Name, room.Type, contact)
}

// CheckInRelayNote is the human readable line attached to webhook relays
func CheckInRelayNote(room entity.Room) string {
	return fmt.Sprintf("%s (%s) 객실의 체크인 메시지가 발송되었습니다.", room.Name, room.Type)
}
