package domain

import "time"

// Article is an editorial piece, optionally attached to an entity.
type Article struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	EntityID  string    `json:"entity_id,omitempty"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ArticleFilters struct {
	EntityID string
	Tag      string
	AuthorID string
}
