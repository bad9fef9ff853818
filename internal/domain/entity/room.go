package entity

import "time"

// Room is a cabin of the guesthouse
type Room struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Special   string    `json:"special,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// DefaultRooms is the built-in catalog used when no database is configured
func DefaultRooms() []Room {
	return []Room{
		{ID: 1, Name: "camino", Type: "단층"},
		{ID: 2, Name: "stone", Type: "단층"},
		{ID: 3, Name: "봄비", Type: "단층"},
		{ID: 4, Name: "camellia", Type: "단층"},
		{ID: 5, Name: "hallasan", Type: "단층"},
		{ID: 6, Name: "paparecipe", Type: "복층", Special: "복층"},
		{ID: 7, Name: "woozoo", Type: "복층", Special: "복층"},
		{ID: 8, Name: "sea", Type: "단층"},
		{ID: 9, Name: "canola", Type: "단층"},
		{ID: 10, Name: "olle", Type: "단층"},
		{ID: 11, Name: "star", Type: "복층", Special: "복층"},
	}
}
