package command

import (
	"context"
	"fmt"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

type DeleteEntityReviewsRequest struct {
	EntityID string
}

type DeleteEntityReviewsResponse struct {
	DeletedCount int64
	RatingReset  bool
}

// DeleteEntityReviews removes every review for an entity. No reviews
// remain by definition, so the entity rating is force-reset to 0 rather
// than recomputed. The reset is best effort like any other rating write.
type DeleteEntityReviews struct {
	EntityFetcher  datasources.EntityFetcher
	ReviewsDeleter datasources.EntityReviewsDeleter
	RatingSetter   datasources.EntityRatingSetter
}

// NewDeleteEntityReviews creates a properly initialized DeleteEntityReviews command.
func NewDeleteEntityReviews(
	entityFetcher datasources.EntityFetcher,
	reviewsDeleter datasources.EntityReviewsDeleter,
	ratingSetter datasources.EntityRatingSetter,
) *DeleteEntityReviews {
	return &DeleteEntityReviews{
		EntityFetcher:  entityFetcher,
		ReviewsDeleter: reviewsDeleter,
		RatingSetter:   ratingSetter,
	}
}

func (c *DeleteEntityReviews) Execute(
	ctx context.Context,
	req DeleteEntityReviewsRequest,
) (DeleteEntityReviewsResponse, error) {
	logger := domain.LoggerFromContext(ctx)

	if _, err := c.EntityFetcher.FetchEntity(ctx, req.EntityID); err != nil {
		return DeleteEntityReviewsResponse{}, fmt.Errorf("checking entity: %w", err)
	}

	deleted, err := c.ReviewsDeleter.DeleteEntityReviews(ctx, req.EntityID)
	if err != nil {
		return DeleteEntityReviewsResponse{}, fmt.Errorf("deleting entity reviews: %w", err)
	}

	resp := DeleteEntityReviewsResponse{DeletedCount: deleted}

	if err := c.RatingSetter.SetEntityRating(ctx, req.EntityID, 0); err != nil {
		logger.ErrorContext(ctx, "failed to reset entity rating after bulk review delete",
			"error", err, "entity_id", req.EntityID)
		return resp, nil
	}

	resp.RatingReset = true
	return resp, nil
}
