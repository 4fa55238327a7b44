package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Abotareq/imDb-sub000/internal/datasources/mocks"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

func TestScorePreferences(t *testing.T) {
	reviewed := []domain.ReviewedEntity{
		{EntityID: "entity1", Rating: 8, EntityType: domain.EntityTypeMovie, Genres: []string{"Drama"}},
		{EntityID: "entity2", Rating: 10, EntityType: domain.EntityTypeMovie, Genres: []string{"Drama", "Crime"}},
	}

	preferences := scorePreferences(reviewed)

	assert.InDelta(t, 1.8, preferences["movie"], 0.0001)
	assert.InDelta(t, 0.9, preferences["Drama"], 0.0001)
	assert.InDelta(t, 0.5, preferences["Crime"], 0.0001)
	assert.Equal(t, domain.EntityTypeMovie, preferences.TopType())
	assert.Equal(t, "Drama", preferences.TopGenre())
}

func TestScorePreferences_Empty(t *testing.T) {
	assert.Nil(t, scorePreferences(nil))
}

func TestRecommendEntities_Execute(t *testing.T) {
	reviewed := []domain.ReviewedEntity{
		{EntityID: "entity1", Rating: 8, EntityType: domain.EntityTypeMovie, Genres: []string{"Drama"}},
		{EntityID: "entity2", Rating: 10, EntityType: domain.EntityTypeMovie, Genres: []string{"Drama"}},
	}
	matches := []domain.Entity{{ID: "entity3", Title: "Heat", Type: domain.EntityTypeMovie}}
	topRated := []domain.Entity{{ID: "entity4", Title: "The Wire", Type: domain.EntityTypeTV}}

	t.Run("recommends_preference_matches", func(t *testing.T) {
		userFetcher := mocks.NewMockUserFetcher(t)
		reviewedLister := mocks.NewMockReviewedEntityLister(t)
		prefsSetter := mocks.NewMockUserPreferencesSetter(t)
		matchLister := mocks.NewMockPreferenceMatchLister(t)
		topLister := mocks.NewMockTopRatedEntityLister(t)

		userFetcher.EXPECT().
			FetchUser(mock.Anything, "user1").
			Return(domain.User{ID: "user1"}, nil)
		reviewedLister.EXPECT().
			ListUserReviewedEntities(mock.Anything, "user1").
			Return(reviewed, nil)
		prefsSetter.EXPECT().
			SetUserPreferences(mock.Anything, "user1", mock.MatchedBy(func(p domain.Preferences) bool {
				return p.TopType() == domain.EntityTypeMovie && p.TopGenre() == "Drama"
			})).
			Return(nil)
		matchLister.EXPECT().
			ListEntitiesByPreference(
				mock.Anything,
				domain.EntityTypeMovie,
				"Drama",
				[]string{"entity1", "entity2"},
				RecommendationLimit,
			).
			Return(matches, nil)

		cmd := NewRecommendEntities(userFetcher, reviewedLister, prefsSetter, matchLister, topLister)

		got, err := cmd.Execute(testContext(), "user1")
		require.NoError(t, err)
		assert.Equal(t, matches, got)
	})

	t.Run("falls_back_to_top_rated_when_no_matches", func(t *testing.T) {
		userFetcher := mocks.NewMockUserFetcher(t)
		reviewedLister := mocks.NewMockReviewedEntityLister(t)
		prefsSetter := mocks.NewMockUserPreferencesSetter(t)
		matchLister := mocks.NewMockPreferenceMatchLister(t)
		topLister := mocks.NewMockTopRatedEntityLister(t)

		userFetcher.EXPECT().
			FetchUser(mock.Anything, "user1").
			Return(domain.User{ID: "user1"}, nil)
		reviewedLister.EXPECT().
			ListUserReviewedEntities(mock.Anything, "user1").
			Return(reviewed, nil)
		prefsSetter.EXPECT().
			SetUserPreferences(mock.Anything, "user1", mock.Anything).
			Return(nil)
		matchLister.EXPECT().
			ListEntitiesByPreference(mock.Anything, domain.EntityTypeMovie, "Drama",
				[]string{"entity1", "entity2"}, RecommendationLimit).
			Return(nil, nil)
		topLister.EXPECT().
			ListTopRatedEntities(mock.Anything, []string{"entity1", "entity2"}, RecommendationLimit).
			Return(topRated, nil)

		cmd := NewRecommendEntities(userFetcher, reviewedLister, prefsSetter, matchLister, topLister)

		got, err := cmd.Execute(testContext(), "user1")
		require.NoError(t, err)
		assert.Equal(t, topRated, got)
	})

	t.Run("no_reviews_uses_stored_preferences", func(t *testing.T) {
		userFetcher := mocks.NewMockUserFetcher(t)
		reviewedLister := mocks.NewMockReviewedEntityLister(t)
		prefsSetter := mocks.NewMockUserPreferencesSetter(t)
		matchLister := mocks.NewMockPreferenceMatchLister(t)
		topLister := mocks.NewMockTopRatedEntityLister(t)

		userFetcher.EXPECT().
			FetchUser(mock.Anything, "user1").
			Return(domain.User{
				ID:          "user1",
				Preferences: domain.Preferences{"tv": 1.2, "Comedy": 0.4},
			}, nil)
		reviewedLister.EXPECT().
			ListUserReviewedEntities(mock.Anything, "user1").
			Return(nil, nil)
		matchLister.EXPECT().
			ListEntitiesByPreference(mock.Anything, domain.EntityTypeTV, "Comedy",
				[]string{}, RecommendationLimit).
			Return(matches, nil)

		cmd := NewRecommendEntities(userFetcher, reviewedLister, prefsSetter, matchLister, topLister)

		got, err := cmd.Execute(testContext(), "user1")
		require.NoError(t, err)
		assert.Equal(t, matches, got)
	})

	t.Run("preference_persist_failure_is_not_fatal", func(t *testing.T) {
		userFetcher := mocks.NewMockUserFetcher(t)
		reviewedLister := mocks.NewMockReviewedEntityLister(t)
		prefsSetter := mocks.NewMockUserPreferencesSetter(t)
		matchLister := mocks.NewMockPreferenceMatchLister(t)
		topLister := mocks.NewMockTopRatedEntityLister(t)

		userFetcher.EXPECT().
			FetchUser(mock.Anything, "user1").
			Return(domain.User{ID: "user1"}, nil)
		reviewedLister.EXPECT().
			ListUserReviewedEntities(mock.Anything, "user1").
			Return(reviewed, nil)
		prefsSetter.EXPECT().
			SetUserPreferences(mock.Anything, "user1", mock.Anything).
			Return(errors.New("db down"))
		matchLister.EXPECT().
			ListEntitiesByPreference(mock.Anything, domain.EntityTypeMovie, "Drama",
				[]string{"entity1", "entity2"}, RecommendationLimit).
			Return(matches, nil)

		cmd := NewRecommendEntities(userFetcher, reviewedLister, prefsSetter, matchLister, topLister)

		got, err := cmd.Execute(testContext(), "user1")
		require.NoError(t, err)
		assert.Equal(t, matches, got)
	})

	t.Run("user_missing", func(t *testing.T) {
		userFetcher := mocks.NewMockUserFetcher(t)

		userFetcher.EXPECT().
			FetchUser(mock.Anything, "user1").
			Return(domain.User{}, domain.ErrNotFound)

		cmd := NewRecommendEntities(
			userFetcher,
			mocks.NewMockReviewedEntityLister(t),
			mocks.NewMockUserPreferencesSetter(t),
			mocks.NewMockPreferenceMatchLister(t),
			mocks.NewMockTopRatedEntityLister(t),
		)

		_, err := cmd.Execute(testContext(), "user1")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}
