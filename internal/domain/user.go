package domain

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Preferences maps a content-type key ("movie", "tv") or a genre name to an
// affinity score. Type keys and genre keys share the one map; the scorer
// tells them apart because the type-key space is exactly ValidEntityTypes.
type Preferences map[string]float64

// TopType returns the highest-scoring type key, or "" when no type key has
// a score.
func (p Preferences) TopType() EntityType {
	var best EntityType
	var bestScore float64
	for _, t := range ValidEntityTypes {
		if score, ok := p[string(t)]; ok && (best == "" || score > bestScore) {
			best = t
			bestScore = score
		}
	}
	return best
}

// TopGenre returns the highest-scoring genre key, or "" when none exists.
func (p Preferences) TopGenre() string {
	var best string
	var bestScore float64
	for key, score := range p {
		if isTypeKey(key) {
			continue
		}
		if best == "" || score > bestScore || (score == bestScore && key < best) {
			best = key
			bestScore = score
		}
	}
	return best
}

func isTypeKey(key string) bool {
	for _, t := range ValidEntityTypes {
		if key == string(t) {
			return true
		}
	}
	return false
}

type User struct {
	ID               string      `json:"id"`
	Username         string      `json:"username"`
	Email            string      `json:"email"`
	PasswordHash     string      `json:"-"`
	Role             Role        `json:"role"`
	Verified         bool        `json:"verified"`
	VerifiedAt       *time.Time  `json:"verified_at,omitempty"`
	VerificationNote string      `json:"verification_note,omitempty"`
	Preferences      Preferences `json:"-"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

type UserFilters struct {
	Verified *bool
	Role     Role
}

type UserListOptions struct {
	Page, PageSize int
}
