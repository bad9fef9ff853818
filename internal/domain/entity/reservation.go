package entity

// ReservationStatus is the lifecycle of a booking relative to a reference day
type ReservationStatus string

const (
	StatusCheckIn  ReservationStatus = "checkIn"
	StatusCheckOut ReservationStatus = "checkOut"
	StatusStaying  ReservationStatus = "staying"
	StatusUpcoming ReservationStatus = "upcoming"
)

// ReservationView is a flattened booking used for display and reports
type ReservationView struct {
	ID           string            `json:"id"`
	CustomerName string            `json:"customerName"`
	Phone        string            `json:"phone,omitempty"`
	CheckIn      string            `json:"checkIn"`
	CheckOut     string            `json:"checkOut"`
	RoomNumber   string            `json:"roomNumber"`
	RoomName     string            `json:"roomName"`
	RoomType     string            `json:"roomType"`
	Guests       int               `json:"guests"`
	Status       ReservationStatus `json:"status"`
	Notes        string            `json:"notes,omitempty"`
	Services     []string          `json:"services,omitempty"`
	Nights       int               `json:"nights"`
	Platform     string            `json:"platform,omitempty"`
}

// UpcomingDay groups upcoming check-ins of one date
type UpcomingDay struct {
	Date         string            `json:"date"`
	Reservations []ReservationView `json:"reservations"`
}

// ReservationSummary is the deduplicated input of the daily reservation text
type ReservationSummary struct {
	CheckIns  []ReservationView `json:"checkIns"`
	CheckOuts []ReservationView `json:"checkOuts"`
	Staying   []ReservationView `json:"staying"`
	Upcoming  []UpcomingDay     `json:"upcoming"`
}

// RoomStatusRow is one line of the today-status table
type RoomStatusRow struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Customer    string `json:"customer"`
	Contact     string `json:"contact"`
	CustomInout string `json:"customInout"`
	Notes       string `json:"notes"`
	Special     string `json:"special,omitempty"`
}
