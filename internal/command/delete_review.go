package command

import (
	"context"
	"fmt"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

type DeleteReviewRequest struct {
	ReviewID   string
	CallerID   string
	CallerRole domain.Role
}

type DeleteReviewResponse struct {
	EntityID        string
	EntityRating    float64
	RatingRefreshed bool
}

// DeleteReview removes a single review and refreshes the entity's cached
// rating. Only the review's author or an admin may delete it.
type DeleteReview struct {
	ReviewFetcher datasources.ReviewFetcher
	ReviewDeleter datasources.ReviewDeleter
	Aggregator    *AggregateEntityRating
}

// NewDeleteReview creates a properly initialized DeleteReview command.
func NewDeleteReview(
	reviewFetcher datasources.ReviewFetcher,
	reviewDeleter datasources.ReviewDeleter,
	aggregator *AggregateEntityRating,
) *DeleteReview {
	return &DeleteReview{
		ReviewFetcher: reviewFetcher,
		ReviewDeleter: reviewDeleter,
		Aggregator:    aggregator,
	}
}

func (c *DeleteReview) Execute(ctx context.Context, req DeleteReviewRequest) (DeleteReviewResponse, error) {
	logger := domain.LoggerFromContext(ctx)

	review, err := c.ReviewFetcher.FetchReview(ctx, req.ReviewID)
	if err != nil {
		return DeleteReviewResponse{}, fmt.Errorf("fetching review: %w", err)
	}

	if review.UserID != req.CallerID && req.CallerRole != domain.RoleAdmin {
		return DeleteReviewResponse{}, domain.ErrForbidden
	}

	if err := c.ReviewDeleter.DeleteReview(ctx, req.ReviewID); err != nil {
		return DeleteReviewResponse{}, fmt.Errorf("deleting review: %w", err)
	}

	resp := DeleteReviewResponse{EntityID: review.EntityID}

	rating, err := c.Aggregator.Execute(ctx, review.EntityID)
	if err != nil {
		logger.ErrorContext(ctx, "failed to refresh entity rating after review delete",
			"error", err, "entity_id", review.EntityID)
		return resp, nil
	}

	resp.EntityRating = rating
	resp.RatingRefreshed = true
	return resp, nil
}
