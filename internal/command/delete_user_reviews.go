package command

import (
	"context"
	"fmt"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

type DeleteUserReviewsRequest struct {
	UserID string
}

type DeleteUserReviewsResponse struct {
	// EntityIDs lists the entities whose reviews were removed.
	EntityIDs []string
	// RefreshFailures counts entities whose rating refresh failed; their
	// cached ratings are stale until the next aggregation.
	RefreshFailures int
}

// DeleteUserReviews removes every review by a user and recomputes the
// rating of each affected entity. Per-entity aggregation failures are
// logged and counted, never fatal.
type DeleteUserReviews struct {
	UserFetcher    datasources.UserFetcher
	ReviewsDeleter datasources.UserReviewsDeleter
	Aggregator     *AggregateEntityRating
}

// NewDeleteUserReviews creates a properly initialized DeleteUserReviews command.
func NewDeleteUserReviews(
	userFetcher datasources.UserFetcher,
	reviewsDeleter datasources.UserReviewsDeleter,
	aggregator *AggregateEntityRating,
) *DeleteUserReviews {
	return &DeleteUserReviews{
		UserFetcher:    userFetcher,
		ReviewsDeleter: reviewsDeleter,
		Aggregator:     aggregator,
	}
}

func (c *DeleteUserReviews) Execute(
	ctx context.Context,
	req DeleteUserReviewsRequest,
) (DeleteUserReviewsResponse, error) {
	logger := domain.LoggerFromContext(ctx)

	if _, err := c.UserFetcher.FetchUser(ctx, req.UserID); err != nil {
		return DeleteUserReviewsResponse{}, fmt.Errorf("checking user: %w", err)
	}

	entityIDs, err := c.ReviewsDeleter.DeleteUserReviews(ctx, req.UserID)
	if err != nil {
		return DeleteUserReviewsResponse{}, fmt.Errorf("deleting user reviews: %w", err)
	}

	resp := DeleteUserReviewsResponse{EntityIDs: entityIDs}

	for _, entityID := range entityIDs {
		if _, err := c.Aggregator.Execute(ctx, entityID); err != nil {
			logger.ErrorContext(ctx, "failed to refresh entity rating after user review delete",
				"error", err, "entity_id", entityID)
			resp.RefreshFailures++
		}
	}

	return resp, nil
}
