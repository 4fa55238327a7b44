package domain

import "time"

// Person is an actor, director, or other credited individual.
type Person struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Biography string     `json:"biography,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	PhotoURL  string     `json:"photo_url,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type PersonFilters struct {
	NameContains string
}
