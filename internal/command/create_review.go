package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// CreateReviewRequest is the request for the CreateReview command.
type CreateReviewRequest struct {
	UserID   string
	EntityID string
	Rating   int
	Comment  string
}

// CreateReviewResponse reports the created review and whether the derived
// entity rating was refreshed. RatingRefreshed is false when aggregation
// failed; the review itself was still created.
type CreateReviewResponse struct {
	Review          domain.Review
	EntityRating    float64
	RatingRefreshed bool
}

// CreateReview creates a review and refreshes the target entity's cached
// rating. One review per (user, entity) pair: a duplicate fails with
// ErrConflict, detected by a pre-check and backed by the storage unique
// index for the race between the check and the insert.
type CreateReview struct {
	EntityFetcher datasources.EntityFetcher
	DupFetcher    datasources.UserEntityReviewFetcher
	ReviewCreator datasources.ReviewCreator
	Aggregator    *AggregateEntityRating
}

// NewCreateReview creates a properly initialized CreateReview command.
func NewCreateReview(
	entityFetcher datasources.EntityFetcher,
	dupFetcher datasources.UserEntityReviewFetcher,
	reviewCreator datasources.ReviewCreator,
	aggregator *AggregateEntityRating,
) *CreateReview {
	return &CreateReview{
		EntityFetcher: entityFetcher,
		DupFetcher:    dupFetcher,
		ReviewCreator: reviewCreator,
		Aggregator:    aggregator,
	}
}

func (c *CreateReview) Execute(ctx context.Context, req CreateReviewRequest) (CreateReviewResponse, error) {
	logger := domain.LoggerFromContext(ctx)

	if _, err := c.EntityFetcher.FetchEntity(ctx, req.EntityID); err != nil {
		return CreateReviewResponse{}, fmt.Errorf("checking entity: %w", err)
	}

	_, err := c.DupFetcher.FetchUserEntityReview(ctx, req.UserID, req.EntityID)
	if err == nil {
		return CreateReviewResponse{}, fmt.Errorf("user already reviewed entity: %w", domain.ErrConflict)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return CreateReviewResponse{}, fmt.Errorf("checking for existing review: %w", err)
	}

	now := time.Now().UTC()
	review := domain.Review{
		ID:        domain.NewID(),
		UserID:    req.UserID,
		EntityID:  req.EntityID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.ReviewCreator.CreateReview(ctx, review); err != nil {
		return CreateReviewResponse{}, fmt.Errorf("creating review: %w", err)
	}

	resp := CreateReviewResponse{Review: review}

	// Best effort: a failed rating refresh never fails the review write.
	rating, err := c.Aggregator.Execute(ctx, req.EntityID)
	if err != nil {
		logger.ErrorContext(ctx, "failed to refresh entity rating after review create",
			"error", err, "entity_id", req.EntityID)
		return resp, nil
	}

	resp.EntityRating = rating
	resp.RatingRefreshed = true
	return resp, nil
}
