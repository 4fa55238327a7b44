package domain

import (
	"time"
)

type EntityType string

const (
	EntityTypeMovie EntityType = "movie"
	EntityTypeTV    EntityType = "tv"
)

// ValidEntityTypes lists every recognised entity type. The set doubles as
// the type-key space of a user's preference map.
var ValidEntityTypes = []EntityType{EntityTypeMovie, EntityTypeTV}

type Genre struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type CastMember struct {
	PersonID    string `json:"person_id"`
	CharacterID string `json:"character_id,omitempty"`
	Credit      string `json:"credit,omitempty"`
}

type Episode struct {
	Number         int    `json:"number"`
	Title          string `json:"title"`
	RuntimeMinutes int    `json:"runtime_minutes,omitempty"`
}

type Season struct {
	Number   int       `json:"number"`
	Title    string    `json:"title,omitempty"`
	Episodes []Episode `json:"episodes,omitempty"`
}

// Entity is a movie or TV show record. Rating is a derived cache of the
// average review rating, always recomputable from the review records.
type Entity struct {
	ID          string       `json:"id"`
	Type        EntityType   `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	ReleaseYear int          `json:"release_year,omitempty"`
	PosterURL   string       `json:"poster_url,omitempty"`
	Rating      float64      `json:"rating"`
	Genres      []Genre      `json:"genres,omitempty"`
	Directors   []string     `json:"directors,omitempty"`
	Cast        []CastMember `json:"cast,omitempty"`
	Seasons     []Season     `json:"seasons,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// GenreNames returns the names of the entity's genres, in declared order.
func (e Entity) GenreNames() []string {
	names := make([]string, 0, len(e.Genres))
	for _, g := range e.Genres {
		names = append(names, g.Name)
	}
	return names
}

type EntityFilters struct {
	Type          EntityType
	Genre         string
	TitleContains string
	MinRating     float64
	ReleaseYear   int
}

type EntityOrderingField string

const (
	EntityOrderingFieldRating      EntityOrderingField = "rating"
	EntityOrderingFieldCreatedAt   EntityOrderingField = "created_at"
	EntityOrderingFieldTitle       EntityOrderingField = "title"
	EntityOrderingFieldReleaseYear EntityOrderingField = "release_year"
)

var ValidEntityOrderingFields = []EntityOrderingField{
	EntityOrderingFieldRating,
	EntityOrderingFieldCreatedAt,
	EntityOrderingFieldTitle,
	EntityOrderingFieldReleaseYear,
}

type EntityListOptions struct {
	OrderBy        EntityOrderingField
	Desc           bool
	Page, PageSize int
}
