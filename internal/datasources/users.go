package datasources

import (
	"context"
	"time"

	"github.com/Abotareq/imDb-sub000/internal/domain"
)

type UserFetcher interface {
	FetchUser(ctx context.Context, userID string) (domain.User, error)
}

type UserByEmailFetcher interface {
	FetchUserByEmail(ctx context.Context, email string) (domain.User, error)
}

type UserLister interface {
	ListUsers(ctx context.Context, filters domain.UserFilters, options domain.UserListOptions) ([]domain.User, error)
}

type UserCreator interface {
	CreateUser(ctx context.Context, user domain.User) error
}

type UserUpdater interface {
	UpdateUser(ctx context.Context, user domain.User) error
}

type UserDeleter interface {
	DeleteUser(ctx context.Context, userID string) error
}

type UserPreferencesSetter interface {
	SetUserPreferences(ctx context.Context, userID string, preferences domain.Preferences) error
}

// VerificationCandidateLister lists unverified users created at or before
// the cutoff time.
type VerificationCandidateLister interface {
	ListVerificationCandidates(ctx context.Context, createdBefore time.Time) ([]domain.User, error)
}

// UserVerifier performs the one-way unverified → verified transition.
type UserVerifier interface {
	MarkUserVerified(ctx context.Context, userID string, verifiedAt time.Time, note string) error
}

type UserRepository interface {
	UserFetcher
	UserByEmailFetcher
	UserLister
	UserCreator
	UserUpdater
	UserDeleter
	UserPreferencesSetter
	VerificationCandidateLister
	UserVerifier
}
