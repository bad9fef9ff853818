package entity

// ServiceSource tells where a booking's yoga/breakfast counts came from
type ServiceSource string

const (
	SourceCustomForm ServiceSource = "customForm"
	SourceAddOn      ServiceSource = "addOn"
)

// ServiceCount is a yoga and breakfast headcount
type ServiceCount struct {
	Yoga      int `json:"yoga"`
	Breakfast int `json:"breakfast"`
}

// Add sums two counts
func (c ServiceCount) Add(other ServiceCount) ServiceCount {
	return ServiceCount{Yoga: c.Yoga + other.Yoga, Breakfast: c.Breakfast + other.Breakfast}
}

// IsZero reports whether nothing was requested
func (c ServiceCount) IsZero() bool {
	return c.Yoga == 0 && c.Breakfast == 0
}

// ServiceDetail is one booking's contribution to the headcount
type ServiceDetail struct {
	ReservationID string        `json:"reservationId"`
	LodgmentName  string        `json:"lodgmentName"`
	GuestName     string        `json:"guestName"`
	Platform      string        `json:"platform"`
	Source        ServiceSource `json:"source"`
	ServiceCount
}

// WellnessReport is the yoga/breakfast view of one service date
type WellnessReport struct {
	Date          string          `json:"date"`
	Total         ServiceCount    `json:"total"`
	Details       []ServiceDetail `json:"details"`
	RoomsOccupied int             `json:"roomsOccupied"`
	TotalGuests   int             `json:"totalGuests"`
	CheckIns      int             `json:"checkIns"`
	CheckOuts     int             `json:"checkOuts"`
}
