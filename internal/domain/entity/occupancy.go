package entity

// OccupancyFact is who, if anyone, stays in a room on one day
type OccupancyFact struct {
	GuestName           string   `json:"guestName"`
	GuestPhone          string   `json:"guestPhone"`
	HasServiceOptions   bool     `json:"hasServiceOptions"`
	ServiceOptionLabels []string `json:"serviceOptionLabels,omitempty"`
}

// Occupancy maps a room number ("1".."11", "WR", "PET") to its fact; nil means vacant
type Occupancy map[string]*OccupancyFact

// Occupied reports whether the room has a guest
func (o Occupancy) Occupied(room string) bool {
	return o[room] != nil
}

// CleaningReport lists rooms per cleaning concern, each sorted numerically
type CleaningReport struct {
	Date                  string   `json:"date"`
	CleaningRooms         []string `json:"cleaningRooms"`
	HotTubRooms           []string `json:"hotTubRooms"`
	ConsecutiveStayRooms  []string `json:"consecutiveStayRooms"`
	TomorrowExpectedRooms []string `json:"tomorrowExpectedRooms"`
}
