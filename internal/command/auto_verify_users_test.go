package command

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Abotareq/imDb-sub000/internal/datasources/mocks"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

func TestAutoVerifyUsers_Execute(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	cutoff := now.Add(-30 * 24 * time.Hour)

	candidate := func(id string) domain.User {
		return domain.User{
			ID:        id,
			Username:  "user_" + id,
			Email:     id + "@example.com",
			CreatedAt: cutoff.Add(-time.Hour),
		}
	}

	t.Run("verifies_eligible_users", func(t *testing.T) {
		lister := mocks.NewMockVerificationCandidateLister(t)
		counter := mocks.NewMockUserReviewCounter(t)
		verifier := mocks.NewMockUserVerifier(t)
		notifier := mocks.NewMockNotifier(t)

		lister.EXPECT().
			ListVerificationCandidates(mock.Anything, cutoff).
			Return([]domain.User{candidate("user1"), candidate("user2")}, nil)

		counter.EXPECT().CountUserReviews(mock.Anything, "user1").Return(7, nil)
		counter.EXPECT().CountUserReviews(mock.Anything, "user2").Return(4, nil)

		verifier.EXPECT().
			MarkUserVerified(mock.Anything, "user1", now, "auto-verified after 30 days with 7 reviews").
			Return(nil)

		notifier.EXPECT().
			SendEmail(mock.Anything, "user1@example.com", "Your account is now verified",
				"account_verified", map[string]string{
					"Username":    "user_user1",
					"ReviewCount": "7",
				}).
			Return(nil)

		cmd := NewAutoVerifyUsers(lister, counter, verifier, notifier, DefaultAutoVerifyUsersConfig())

		resp, err := cmd.Execute(testContext(), AutoVerifyUsersRequest{Now: now})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Evaluated)
		assert.Equal(t, 1, resp.Verified)
		assert.Empty(t, resp.NotifyFailures)
	})

	t.Run("repeat_sweep_verifies_nobody", func(t *testing.T) {
		lister := mocks.NewMockVerificationCandidateLister(t)

		// Verified users no longer appear as candidates.
		lister.EXPECT().
			ListVerificationCandidates(mock.Anything, cutoff).
			Return(nil, nil)

		cmd := NewAutoVerifyUsers(
			lister,
			mocks.NewMockUserReviewCounter(t),
			mocks.NewMockUserVerifier(t),
			mocks.NewMockNotifier(t),
			DefaultAutoVerifyUsersConfig(),
		)

		resp, err := cmd.Execute(testContext(), AutoVerifyUsersRequest{Now: now})
		require.NoError(t, err)
		assert.Zero(t, resp.Evaluated)
		assert.Zero(t, resp.Verified)
	})

	t.Run("notify_failure_keeps_verification", func(t *testing.T) {
		lister := mocks.NewMockVerificationCandidateLister(t)
		counter := mocks.NewMockUserReviewCounter(t)
		verifier := mocks.NewMockUserVerifier(t)
		notifier := mocks.NewMockNotifier(t)

		lister.EXPECT().
			ListVerificationCandidates(mock.Anything, cutoff).
			Return([]domain.User{candidate("user1")}, nil)
		counter.EXPECT().CountUserReviews(mock.Anything, "user1").Return(5, nil)
		verifier.EXPECT().
			MarkUserVerified(mock.Anything, "user1", now, mock.Anything).
			Return(nil)
		notifier.EXPECT().
			SendEmail(mock.Anything, "user1@example.com", mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("smtp down"))

		cmd := NewAutoVerifyUsers(lister, counter, verifier, notifier, DefaultAutoVerifyUsersConfig())

		resp, err := cmd.Execute(testContext(), AutoVerifyUsersRequest{Now: now})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Verified)
		assert.Equal(t, []string{"user1"}, resp.NotifyFailures)
	})

	t.Run("count_error_skips_user_and_continues", func(t *testing.T) {
		lister := mocks.NewMockVerificationCandidateLister(t)
		counter := mocks.NewMockUserReviewCounter(t)
		verifier := mocks.NewMockUserVerifier(t)
		notifier := mocks.NewMockNotifier(t)

		lister.EXPECT().
			ListVerificationCandidates(mock.Anything, cutoff).
			Return([]domain.User{candidate("user1"), candidate("user2")}, nil)

		counter.EXPECT().CountUserReviews(mock.Anything, "user1").Return(0, errors.New("db down"))
		counter.EXPECT().CountUserReviews(mock.Anything, "user2").Return(6, nil)

		verifier.EXPECT().
			MarkUserVerified(mock.Anything, "user2", now, mock.Anything).
			Return(nil)
		notifier.EXPECT().
			SendEmail(mock.Anything, "user2@example.com", mock.Anything, mock.Anything, mock.Anything).
			Return(nil)

		cmd := NewAutoVerifyUsers(lister, counter, verifier, notifier, DefaultAutoVerifyUsersConfig())

		resp, err := cmd.Execute(testContext(), AutoVerifyUsersRequest{Now: now})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Evaluated)
		assert.Equal(t, 1, resp.Verified)
	})

	t.Run("candidate_listing_error", func(t *testing.T) {
		lister := mocks.NewMockVerificationCandidateLister(t)

		lister.EXPECT().
			ListVerificationCandidates(mock.Anything, cutoff).
			Return(nil, errors.New("db down"))

		cmd := NewAutoVerifyUsers(
			lister,
			mocks.NewMockUserReviewCounter(t),
			mocks.NewMockUserVerifier(t),
			mocks.NewMockNotifier(t),
			DefaultAutoVerifyUsersConfig(),
		)

		_, err := cmd.Execute(testContext(), AutoVerifyUsersRequest{Now: now})
		require.Error(t, err)
	})
}
