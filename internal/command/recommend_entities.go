package command

import (
	"context"
	"fmt"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// RecommendationLimit caps the number of recommended entities.
const RecommendationLimit = 5

const (
	typeScorePerReview  = 0.1  // rating/10
	genreScorePerReview = 0.05 // rating/20, half the type weight
)

// RecommendEntities scores a user's preferences from their review history
// and returns up to RecommendationLimit entities they have not reviewed.
//
// Preferences are recomputed from scratch on every call and persisted on
// the user as a side effect; the stored map is only read when the user has
// no remaining reviews to recompute from.
type RecommendEntities struct {
	UserFetcher       datasources.UserFetcher
	ReviewedLister    datasources.ReviewedEntityLister
	PreferencesSetter datasources.UserPreferencesSetter
	MatchLister       datasources.PreferenceMatchLister
	TopRatedLister    datasources.TopRatedEntityLister
}

// NewRecommendEntities creates a properly initialized RecommendEntities command.
func NewRecommendEntities(
	userFetcher datasources.UserFetcher,
	reviewedLister datasources.ReviewedEntityLister,
	preferencesSetter datasources.UserPreferencesSetter,
	matchLister datasources.PreferenceMatchLister,
	topRatedLister datasources.TopRatedEntityLister,
) *RecommendEntities {
	return &RecommendEntities{
		UserFetcher:       userFetcher,
		ReviewedLister:    reviewedLister,
		PreferencesSetter: preferencesSetter,
		MatchLister:       matchLister,
		TopRatedLister:    topRatedLister,
	}
}

func (c *RecommendEntities) Execute(ctx context.Context, userID string) ([]domain.Entity, error) {
	logger := domain.LoggerFromContext(ctx)

	user, err := c.UserFetcher.FetchUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching user: %w", err)
	}

	reviewed, err := c.ReviewedLister.ListUserReviewedEntities(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing reviewed entities: %w", err)
	}

	preferences := scorePreferences(reviewed)
	if len(preferences) > 0 {
		// Best effort: stale stored preferences only cost recommendation
		// quality on a later call that has no reviews to rescore from.
		if err := c.PreferencesSetter.SetUserPreferences(ctx, userID, preferences); err != nil {
			logger.WarnContext(ctx, "failed to persist user preferences",
				"error", err, "user_id", userID)
		}
	} else {
		preferences = user.Preferences
	}

	excludeIDs := make([]string, 0, len(reviewed))
	for _, re := range reviewed {
		excludeIDs = append(excludeIDs, re.EntityID)
	}

	matches, err := c.MatchLister.ListEntitiesByPreference(
		ctx,
		preferences.TopType(),
		preferences.TopGenre(),
		excludeIDs,
		RecommendationLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing preference matches: %w", err)
	}

	if len(matches) > 0 {
		return matches, nil
	}

	// No preference signal, or every match already reviewed: fall back to
	// the globally best-rated entities.
	fallback, err := c.TopRatedLister.ListTopRatedEntities(ctx, excludeIDs, RecommendationLimit)
	if err != nil {
		return nil, fmt.Errorf("listing top rated entities: %w", err)
	}
	return fallback, nil
}

// scorePreferences derives an affinity map from review history: each
// review adds rating/10 to the entity's type key and rating/20 to each of
// its genre keys, so one many-genred entity cannot drown out the type
// signal.
func scorePreferences(reviewed []domain.ReviewedEntity) domain.Preferences {
	if len(reviewed) == 0 {
		return nil
	}

	preferences := domain.Preferences{}
	for _, re := range reviewed {
		preferences[string(re.EntityType)] += float64(re.Rating) * typeScorePerReview
		for _, genre := range re.Genres {
			preferences[genre] += float64(re.Rating) * genreScorePerReview
		}
	}
	return preferences
}
