package datasources

import (
	"context"

	"github.com/Abotareq/imDb-sub000/internal/domain"
)

type ReviewFetcher interface {
	FetchReview(ctx context.Context, reviewID string) (domain.Review, error)
}

type EntityReviewLister interface {
	ListEntityReviews(ctx context.Context, entityID string, page, pageSize int) ([]domain.Review, error)
}

// UserEntityReviewFetcher looks up the review a user left on an entity, if
// any. Used as the duplicate pre-check before creating a review.
type UserEntityReviewFetcher interface {
	FetchUserEntityReview(ctx context.Context, userID, entityID string) (domain.Review, error)
}

type ReviewCreator interface {
	CreateReview(ctx context.Context, review domain.Review) error
}

type ReviewUpdater interface {
	UpdateReview(ctx context.Context, review domain.Review) error
}

type ReviewDeleter interface {
	DeleteReview(ctx context.Context, reviewID string) error
}

// EntityReviewsDeleter removes every review for one entity, returning the
// number deleted.
type EntityReviewsDeleter interface {
	DeleteEntityReviews(ctx context.Context, entityID string) (int64, error)
}

// UserReviewsDeleter removes every review by one user, returning the IDs of
// the entities whose reviews were removed so their ratings can be
// recomputed.
type UserReviewsDeleter interface {
	DeleteUserReviews(ctx context.Context, userID string) ([]string, error)
}

// EntityRatingAverager computes the average review rating for an entity.
// count is zero when the entity has no reviews.
type EntityRatingAverager interface {
	AverageEntityRating(ctx context.Context, entityID string) (avg float64, count int64, err error)
}

type UserReviewCounter interface {
	CountUserReviews(ctx context.Context, userID string) (int64, error)
}

// ReviewedEntityLister returns a user's reviews joined with the type and
// genres of the reviewed entities.
type ReviewedEntityLister interface {
	ListUserReviewedEntities(ctx context.Context, userID string) ([]domain.ReviewedEntity, error)
}

type ReviewRepository interface {
	ReviewFetcher
	EntityReviewLister
	UserEntityReviewFetcher
	ReviewCreator
	ReviewUpdater
	ReviewDeleter
	EntityReviewsDeleter
	UserReviewsDeleter
	EntityRatingAverager
	UserReviewCounter
	ReviewedEntityLister
}
