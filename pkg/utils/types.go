package utils

// Constants
const (
	APIDateLayout   = "2006-01-02"
	LedgerKeyPrefix = "checkin-sent-"

	RoomWellnessRetreat = "WR"
	RoomPetOnly         = "PET"

	ReservationConfirmed = "confirmed"

	TitleBreakfast = "조식"
	TitleYoga      = "요가"
	TitleCheckIn   = "체크인"
	TitleHeadcount = "투숙 인원"
	TitleHotTub    = "핫텁"
)

// BundlePackages are add-on labels that include both yoga and breakfast
// even though the label does not spell out 조식.
var BundlePackages = []string{"요가하는 하루", "에가톳의 하루"}
