package templates

import (
	"strings"
	"testing"
	"time"

	"guesthouse-ops-service/internal/domain/entity"
)

var saturday = time.Date(2024, 9, 7, 10, 0, 0, 0, time.FixedZone("KST", 9*60*60))

func TestReservationText(t *testing.T) {
	lee := entity.ReservationView{ID: "r1", CustomerName: "Lee", RoomName: "stone", RoomNumber: "2", Nights: 1, CheckOut: "2024-09-08"}

	tests := []struct {
		name    string
		summary entity.ReservationSummary
		want    string
	}{
		{
			name:    "single check-in",
			summary: entity.ReservationSummary{CheckIns: []entity.ReservationView{lee}},
			want:    "[공유] 9월 7일 (토) 예약 리스트\n\n[1] 체크인\n - Lee/stone(2)/1박(~09.08)\n\n",
		},
		{
			name:    "nothing to report",
			summary: entity.ReservationSummary{},
			want:    "[공유] 9월 7일 (토) 예약 리스트\n\n",
		},
		{
			name: "all sections",
			summary: entity.ReservationSummary{
				CheckIns: []entity.ReservationView{{
					CustomerName: "Lee", RoomName: "stone", RoomNumber: "2", Nights: 2, CheckOut: "2024-09-09",
					Services: []string{"조식: 9/8 2명", "요가: 9/8 2명"},
				}},
				CheckOuts: []entity.ReservationView{{CustomerName: "Kim", RoomName: "camino", RoomNumber: "1", Nights: 3, CheckOut: "2024-09-07"}},
				Staying: []entity.ReservationView{{
					CustomerName: "Park", RoomName: "sea", RoomNumber: "8", Nights: 4, CheckOut: "2024-09-10",
					Services: []string{"핫텁: 1"},
				}},
				Upcoming: []entity.UpcomingDay{
					{Date: "2024-09-08", Reservations: []entity.ReservationView{{CustomerName: "Choi", RoomName: "olle", RoomNumber: "10", Nights: 1, CheckOut: "2024-09-09"}}},
					{Date: "2024-09-10", Reservations: []entity.ReservationView{{CustomerName: "Han", RoomName: "star", RoomNumber: "11", Nights: 2, CheckOut: "2024-09-12", Services: []string{"인원: 4"}}}},
				},
			},
			want: "[공유] 9월 7일 (토) 예약 리스트\n\n" +
				"[1] 체크인\n - Lee/stone(2)/2박(~09.09)/조식: 9/8 2명,요가: 9/8 2명\n\n" +
				"[2] 체크아웃\n - Kim/camino(1)/3박(~09.07)\n\n" +
				"[3] 재실\n - Park/sea(8)/4박(~09.10)/핫텁: 1\n\n" +
				"[4] 주간현황\n9.8\n - Choi/olle(10)/1박(~09.09)\n9.10\n - Han/star(11)/2박(~09.12)/인원: 4\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReservationText(saturday, tt.summary)
			if got != tt.want {
				t.Errorf("ReservationText() =\n%q\nwant\n%q", got, tt.want)
			}
			if again := ReservationText(saturday, tt.summary); again != got {
				t.Error("ReservationText is not deterministic")
			}
		})
	}
}

func TestCleaningText(t *testing.T) {
	report := entity.CleaningReport{
		CleaningRooms:        []string{"2", "10"},
		ConsecutiveStayRooms: []string{"3"},
	}

	want := "[9/7(토) 객실청소 사항 공유]\n" +
		"- 청소할 객실 : 2, 10\n" +
		"- 핫텁 : 없음\n" +
		"- 연박 고객님 : 3\n" +
		"- 내일 예상 객실 : 없음"

	if got := CleaningText(saturday, report); got != want {
		t.Errorf("CleaningText() =\n%q\nwant\n%q", got, want)
	}
}

func TestWellnessText(t *testing.T) {
	got := WellnessText(saturday, entity.ServiceCount{Yoga: 3, Breakfast: 5})

	for _, want := range []string{"[9/7(토) 요가·조식 안내]\n", "- 요가: 3명\n", "- 조식: 5명"} {
		if !strings.Contains(got, want) {
			t.Errorf("WellnessText() = %q, missing %q", got, want)
		}
	}
}

func TestCheckInMessage(t *testing.T) {
	room := entity.Room{ID: 6, Name: "paparecipe", Type: "복층"}

	got := CheckInMessage(room, "010-0000-0000")
	if !strings.Contains(got, "6번(paparecipe, 복층) 캐빈") {
		t.Errorf("CheckInMessage() does not name the room: %q", got)
	}
	if !strings.Contains(got, "문의처 :  010-0000-0000\n") {
		t.Errorf("CheckInMessage() does not carry the contact: %q", got)
	}

	if note := CheckInRelayNote(room); note != "paparecipe (복층) 객실의 체크인 메시지가 발송되었습니다." {
		t.Errorf("CheckInRelayNote() = %q", note)
	}
}
