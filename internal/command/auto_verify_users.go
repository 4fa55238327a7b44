package command

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// AutoVerifyUsersConfig sets the eligibility thresholds for the sweep.
type AutoVerifyUsersConfig struct {
	MinAccountAge time.Duration
	MinReviews    int64
}

// DefaultAutoVerifyUsersConfig returns the production thresholds: 30 days
// of tenure and 5 reviews.
func DefaultAutoVerifyUsersConfig() AutoVerifyUsersConfig {
	return AutoVerifyUsersConfig{
		MinAccountAge: 30 * 24 * time.Hour,
		MinReviews:    5,
	}
}

// AutoVerifyUsersRequest carries the sweep time. A zero Now means
// time.Now.
type AutoVerifyUsersRequest struct {
	Now time.Time
}

// AutoVerifyUsersResponse summarizes one sweep. NotifyFailures holds the
// IDs of users who were verified but whose notification could not be
// sent; the verification itself is never reverted.
type AutoVerifyUsersResponse struct {
	Evaluated      int
	Verified       int
	NotifyFailures []string
}

// AutoVerifyUsers promotes eligible users to verified. The sweep is
// idempotent: verified users drop out of the candidate filter, so a
// repeat run with no new qualifying activity verifies nobody.
type AutoVerifyUsers struct {
	CandidateLister datasources.VerificationCandidateLister
	ReviewCounter   datasources.UserReviewCounter
	Verifier        datasources.UserVerifier
	Notifier        datasources.Notifier
	Config          AutoVerifyUsersConfig
}

// NewAutoVerifyUsers creates a properly initialized AutoVerifyUsers command.
func NewAutoVerifyUsers(
	candidateLister datasources.VerificationCandidateLister,
	reviewCounter datasources.UserReviewCounter,
	verifier datasources.UserVerifier,
	notifier datasources.Notifier,
	config AutoVerifyUsersConfig,
) *AutoVerifyUsers {
	return &AutoVerifyUsers{
		CandidateLister: candidateLister,
		ReviewCounter:   reviewCounter,
		Verifier:        verifier,
		Notifier:        notifier,
		Config:          config,
	}
}

func (c *AutoVerifyUsers) Execute(
	ctx context.Context,
	req AutoVerifyUsersRequest,
) (AutoVerifyUsersResponse, error) {
	logger := domain.LoggerFromContext(ctx)

	now := req.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	candidates, err := c.CandidateLister.ListVerificationCandidates(ctx, now.Add(-c.Config.MinAccountAge))
	if err != nil {
		return AutoVerifyUsersResponse{}, fmt.Errorf("listing verification candidates: %w", err)
	}

	resp := AutoVerifyUsersResponse{Evaluated: len(candidates)}

	for _, user := range candidates {
		count, err := c.ReviewCounter.CountUserReviews(ctx, user.ID)
		if err != nil {
			// One user's failure never blocks the rest of the sweep.
			logger.ErrorContext(ctx, "failed to count reviews for verification candidate",
				"error", err, "user_id", user.ID)
			continue
		}

		if count < c.Config.MinReviews {
			continue
		}

		note := fmt.Sprintf("auto-verified after %d days with %d reviews",
			int(c.Config.MinAccountAge.Hours()/24), count)
		if err := c.Verifier.MarkUserVerified(ctx, user.ID, now, note); err != nil {
			logger.ErrorContext(ctx, "failed to mark user verified",
				"error", err, "user_id", user.ID)
			continue
		}
		resp.Verified++

		if err := c.Notifier.SendEmail(ctx, user.Email, "Your account is now verified",
			"account_verified", map[string]string{
				"Username":    user.Username,
				"ReviewCount": strconv.FormatInt(count, 10),
			}); err != nil {
			logger.WarnContext(ctx, "failed to send verification notification",
				"error", err, "user_id", user.ID)
			resp.NotifyFailures = append(resp.NotifyFailures, user.ID)
		}
	}

	return resp, nil
}
