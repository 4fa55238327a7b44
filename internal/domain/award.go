package domain

import "time"

// Award is a single award win or nomination, attached to an entity, a
// person, or both.
type Award struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category,omitempty"`
	Year      int       `json:"year"`
	EntityID  string    `json:"entity_id,omitempty"`
	PersonID  string    `json:"person_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AwardFilters struct {
	Year     int
	EntityID string
	PersonID string
}
