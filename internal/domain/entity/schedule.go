// internal/domain/entity/schedule.go
package entity

// ScheduleEnvelope is the PMS response wrapper; only Data is consumed
type ScheduleEnvelope struct {
	Msg  string        `json:"msg"`
	Data *ScheduleFeed `json:"data"`
}

// ScheduleFeed is the schedule payload for a date range
type ScheduleFeed struct {
	LodgmentTypes []LodgmentType `json:"lodgmentTypes"`
}

// LodgmentType is a bookable room category, in practice one physical cabin
type LodgmentType struct {
	LodgmentTypeID   string `json:"lodgmentTypeId"`
	LodgmentTypeName string `json:"lodgmentTypeName"`
	DefaultHeadcount int    `json:"defaultHeadcount"`
	MaximumHeadcount int    `json:"maximumHeadcount"`
	Days             []Day  `json:"days"`
}

// Day is one room type's state on one calendar date
type Day struct {
	Date      string     `json:"date"`
	Memo      string     `json:"memo"`
	Lodgments []Lodgment `json:"lodgments"`
}

// Lodgment is a physical unit of a room type
type Lodgment struct {
	LodgmentID   string        `json:"lodgmentId"`
	Name         string        `json:"name"`
	RemainStock  int           `json:"remainStock"`
	Stock        int           `json:"stock"`
	Reservations []Reservation `json:"reservations"`
}

// Reservation is one booking as delivered by the PMS
type Reservation struct {
	ID                string               `json:"id"`
	UserInfo          UserInfo             `json:"userInfo"`
	Status            string               `json:"status"`
	Memo              *string              `json:"memo"`
	PlatformName      string               `json:"platformName"`
	TotalHeadcount    *int                 `json:"totalHeadcount"`
	IsOtherPlatform   bool                 `json:"isOtherPlatform"`
	NBookingDetails   *NaverBookingDetails `json:"nBookingDetails,omitempty"`
	AddPersonOptions  []AddOnOption        `json:"addPersonOptions"`
	AdditionalOptions []AddOnOption        `json:"additionalOptions"`
	CheckIn           string               `json:"checkIn"`
	CheckOut          string               `json:"checkOut"`
}

// UserInfo identifies the guest
type UserInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// NaverBookingDetails carries platform specific booking data
type NaverBookingDetails struct {
	BizItemName      string            `json:"bizItemName"`
	Count            int               `json:"count"`
	CustomFormInputs []CustomFormInput `json:"customFormInputs"`
}

// CustomFormInput is one answer of a booking platform's custom form
type CustomFormInput struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Required string `json:"required"`
	Value    string `json:"value,omitempty"`
}

// AddOnOption is an "add person" or "additional" option record.
// Add-person options carry their label in "age", additional options in "title".
type AddOnOption struct {
	Age   string `json:"age,omitempty"`
	Title string `json:"title,omitempty"`
	Count int    `json:"count"`
}

// Label returns the free-text label of the option
func (o AddOnOption) Label() string {
	if o.Age != "" {
		return o.Age
	}
	return o.Title
}

// Types returns the room types of the feed; nil feeds have none
func (f *ScheduleFeed) Types() []LodgmentType {
	if f == nil {
		return nil
	}
	return f.LodgmentTypes
}

// DayFor returns the day record for date, or nil when the feed has none
func (t *LodgmentType) DayFor(date string) *Day {
	if t == nil {
		return nil
	}
	for i := range t.Days {
		if t.Days[i].Date == date {
			return &t.Days[i]
		}
	}
	return nil
}

// FirstLodgment returns the active unit of the day, or nil
func (d *Day) FirstLodgment() *Lodgment {
	if d == nil || len(d.Lodgments) == 0 {
		return nil
	}
	return &d.Lodgments[0]
}

// AllReservations returns every reservation across the day's units
func (d *Day) AllReservations() []*Reservation {
	if d == nil {
		return nil
	}
	var out []*Reservation
	for i := range d.Lodgments {
		for j := range d.Lodgments[i].Reservations {
			out = append(out, &d.Lodgments[i].Reservations[j])
		}
	}
	return out
}

// FirstConfirmed returns the unit's first confirmed reservation, or nil
func (l *Lodgment) FirstConfirmed() *Reservation {
	if l == nil {
		return nil
	}
	for i := range l.Reservations {
		if l.Reservations[i].IsConfirmed() {
			return &l.Reservations[i]
		}
	}
	return nil
}

// IsConfirmed reports whether the booking is confirmed
func (r *Reservation) IsConfirmed() bool {
	return r != nil && r.Status == "confirmed"
}

// CustomFormInputs returns the platform form answers, or nil
func (r *Reservation) CustomFormInputs() []CustomFormInput {
	if r == nil || r.NBookingDetails == nil {
		return nil
	}
	return r.NBookingDetails.CustomFormInputs
}

// AddOns returns add-person options followed by additional options
func (r *Reservation) AddOns() []AddOnOption {
	if r == nil {
		return nil
	}
	out := make([]AddOnOption, 0, len(r.AddPersonOptions)+len(r.AdditionalOptions))
	out = append(out, r.AddPersonOptions...)
	return append(out, r.AdditionalOptions...)
}

// MemoText returns the memo or ""
func (r *Reservation) MemoText() string {
	if r == nil || r.Memo == nil {
		return ""
	}
	return *r.Memo
}

// Headcount returns the declared total headcount or 0
func (r *Reservation) Headcount() int {
	if r == nil || r.TotalHeadcount == nil {
		return 0
	}
	return *r.TotalHeadcount
}
