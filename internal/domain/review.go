package domain

import "time"

const (
	ReviewRatingMin     = 1
	ReviewRatingMax     = 10
	ReviewCommentMaxLen = 1000
)

// Review is a single user's rating of a single entity. At most one review
// exists per (user, entity) pair.
type Review struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	EntityID  string    `json:"entity_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReviewedEntity is a review joined with the type and genres of its target
// entity, the shape consumed by preference scoring.
type ReviewedEntity struct {
	EntityID   string
	Rating     int
	EntityType EntityType
	Genres     []string
}
