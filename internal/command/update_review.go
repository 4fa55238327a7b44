package command

import (
	"context"
	"fmt"
	"time"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// UpdateReviewRequest is the request for the UpdateReview command. Nil
// fields are left unchanged.
type UpdateReviewRequest struct {
	ReviewID   string
	CallerID   string
	CallerRole domain.Role
	Rating     *int
	Comment    *string
}

type UpdateReviewResponse struct {
	Review          domain.Review
	EntityRating    float64
	RatingRefreshed bool
}

// UpdateReview edits a review's rating or comment. Only the review's
// author or an admin may edit it. The entity rating is refreshed only when
// the rating value actually changed.
type UpdateReview struct {
	ReviewFetcher datasources.ReviewFetcher
	ReviewUpdater datasources.ReviewUpdater
	Aggregator    *AggregateEntityRating
}

// NewUpdateReview creates a properly initialized UpdateReview command.
func NewUpdateReview(
	reviewFetcher datasources.ReviewFetcher,
	reviewUpdater datasources.ReviewUpdater,
	aggregator *AggregateEntityRating,
) *UpdateReview {
	return &UpdateReview{
		ReviewFetcher: reviewFetcher,
		ReviewUpdater: reviewUpdater,
		Aggregator:    aggregator,
	}
}

func (c *UpdateReview) Execute(ctx context.Context, req UpdateReviewRequest) (UpdateReviewResponse, error) {
	logger := domain.LoggerFromContext(ctx)

	review, err := c.ReviewFetcher.FetchReview(ctx, req.ReviewID)
	if err != nil {
		return UpdateReviewResponse{}, fmt.Errorf("fetching review: %w", err)
	}

	if review.UserID != req.CallerID && req.CallerRole != domain.RoleAdmin {
		return UpdateReviewResponse{}, domain.ErrForbidden
	}

	ratingChanged := false
	if req.Rating != nil && *req.Rating != review.Rating {
		review.Rating = *req.Rating
		ratingChanged = true
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}
	review.UpdatedAt = time.Now().UTC()

	if err := c.ReviewUpdater.UpdateReview(ctx, review); err != nil {
		return UpdateReviewResponse{}, fmt.Errorf("updating review: %w", err)
	}

	resp := UpdateReviewResponse{Review: review}

	if !ratingChanged {
		return resp, nil
	}

	rating, err := c.Aggregator.Execute(ctx, review.EntityID)
	if err != nil {
		logger.ErrorContext(ctx, "failed to refresh entity rating after review update",
			"error", err, "entity_id", review.EntityID)
		return resp, nil
	}

	resp.EntityRating = rating
	resp.RatingRefreshed = true
	return resp, nil
}
