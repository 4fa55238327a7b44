package worker

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Abotareq/imDb-sub000/internal/command"
	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/datasources/mocks"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

func TestAutoVerifier_Run(t *testing.T) {
	t.Run("sweeps_until_cancelled", func(t *testing.T) {
		var sweeps atomic.Int64

		lister := mocks.NewMockVerificationCandidateLister(t)
		lister.EXPECT().
			ListVerificationCandidates(mock.Anything, mock.Anything).
			RunAndReturn(func(context.Context, time.Time) ([]domain.User, error) {
				sweeps.Add(1)
				return nil, nil
			}).
			Maybe()

		verifier := &AutoVerifier{
			Command: command.NewAutoVerifyUsers(
				lister,
				mocks.NewMockUserReviewCounter(t),
				mocks.NewMockUserVerifier(t),
				datasources.NullNotifier{},
				command.DefaultAutoVerifyUsersConfig(),
			),
			Interval: 5 * time.Millisecond,
		}

		ctx := domain.ContextWithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctx, cancel := context.WithTimeout(ctx, 60*time.Millisecond)
		defer cancel()

		err := verifier.Run(ctx)

		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.GreaterOrEqual(t, sweeps.Load(), int64(1))
	})

	t.Run("stops_before_first_tick", func(t *testing.T) {
		verifier := &AutoVerifier{
			Command: command.NewAutoVerifyUsers(
				mocks.NewMockVerificationCandidateLister(t),
				mocks.NewMockUserReviewCounter(t),
				mocks.NewMockUserVerifier(t),
				datasources.NullNotifier{},
				command.DefaultAutoVerifyUsersConfig(),
			),
			Interval: time.Hour,
		}

		ctx := domain.ContextWithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctx, cancel := context.WithCancel(ctx)
		cancel()

		err := verifier.Run(ctx)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
