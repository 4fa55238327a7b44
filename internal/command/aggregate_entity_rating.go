package command

import (
	"context"
	"fmt"
	"math"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
)

// AggregateEntityRating recomputes an entity's displayed rating from its
// reviews and writes it back onto the entity. The write happens even when
// the value is unchanged.
type AggregateEntityRating struct {
	Averager     datasources.EntityRatingAverager
	RatingSetter datasources.EntityRatingSetter
}

// NewAggregateEntityRating creates a properly initialized AggregateEntityRating command.
func NewAggregateEntityRating(
	averager datasources.EntityRatingAverager,
	ratingSetter datasources.EntityRatingSetter,
) *AggregateEntityRating {
	return &AggregateEntityRating{
		Averager:     averager,
		RatingSetter: ratingSetter,
	}
}

// Execute returns the recomputed rating, rounded to one decimal place, or
// 0 when the entity has no reviews. Errors are returned to the caller;
// review commands treat them as non-fatal and never roll back the
// triggering review write.
func (c *AggregateEntityRating) Execute(ctx context.Context, entityID string) (float64, error) {
	avg, count, err := c.Averager.AverageEntityRating(ctx, entityID)
	if err != nil {
		return 0, fmt.Errorf("averaging reviews: %w", err)
	}

	rating := 0.0
	if count > 0 {
		rating = roundToOneDecimal(avg)
	}

	if err := c.RatingSetter.SetEntityRating(ctx, entityID, rating); err != nil {
		return 0, fmt.Errorf("writing entity rating: %w", err)
	}

	return rating, nil
}

func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
