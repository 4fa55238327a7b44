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

func TestDeleteUserReviews_Execute(t *testing.T) {
	t.Run("reaggregates_each_affected_entity", func(t *testing.T) {
		userFetcher := mocks.NewMockUserFetcher(t)
		deleter := mocks.NewMockUserReviewsDeleter(t)
		averager := mocks.NewMockEntityRatingAverager(t)
		setter := mocks.NewMockEntityRatingSetter(t)

		userFetcher.EXPECT().
			FetchUser(mock.Anything, "user1").
			Return(domain.User{ID: "user1"}, nil)
		deleter.EXPECT().
			DeleteUserReviews(mock.Anything, "user1").
			Return([]string{"entity1", "entity2"}, nil)

		for _, entityID := range []string{"entity1", "entity2"} {
			averager.EXPECT().
				AverageEntityRating(mock.Anything, entityID).
				Return(7.0, 2, nil).
				Once()
			setter.EXPECT().
				SetEntityRating(mock.Anything, entityID, 7.0).
				Return(nil).
				Once()
		}

		cmd := NewDeleteUserReviews(userFetcher, deleter, NewAggregateEntityRating(averager, setter))

		resp, err := cmd.Execute(testContext(), DeleteUserReviewsRequest{UserID: "user1"})
		require.NoError(t, err)
		assert.Equal(t, []string{"entity1", "entity2"}, resp.EntityIDs)
		assert.Zero(t, resp.RefreshFailures)
	})

	t.Run("counts_refresh_failures", func(t *testing.T) {
		userFetcher := mocks.NewMockUserFetcher(t)
		deleter := mocks.NewMockUserReviewsDeleter(t)
		averager := mocks.NewMockEntityRatingAverager(t)
		setter := mocks.NewMockEntityRatingSetter(t)

		userFetcher.EXPECT().
			FetchUser(mock.Anything, "user1").
			Return(domain.User{ID: "user1"}, nil)
		deleter.EXPECT().
			DeleteUserReviews(mock.Anything, "user1").
			Return([]string{"entity1", "entity2"}, nil)

		averager.EXPECT().
			AverageEntityRating(mock.Anything, "entity1").
			Return(0, 0, errors.New("db down")).
			Once()
		averager.EXPECT().
			AverageEntityRating(mock.Anything, "entity2").
			Return(6.0, 1, nil).
			Once()
		setter.EXPECT().
			SetEntityRating(mock.Anything, "entity2", 6.0).
			Return(nil).
			Once()

		cmd := NewDeleteUserReviews(userFetcher, deleter, NewAggregateEntityRating(averager, setter))

		resp, err := cmd.Execute(testContext(), DeleteUserReviewsRequest{UserID: "user1"})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.RefreshFailures)
	})

	t.Run("user_missing", func(t *testing.T) {
		userFetcher := mocks.NewMockUserFetcher(t)
		deleter := mocks.NewMockUserReviewsDeleter(t)

		userFetcher.EXPECT().
			FetchUser(mock.Anything, "user1").
			Return(domain.User{}, domain.ErrNotFound)

		cmd := NewDeleteUserReviews(userFetcher, deleter, testAggregator(t, "unused", 0, nil))

		_, err := cmd.Execute(testContext(), DeleteUserReviewsRequest{UserID: "user1"})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}
