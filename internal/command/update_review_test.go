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

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestUpdateReview_Execute(t *testing.T) {
	existing := domain.Review{
		ID:        "review1",
		UserID:    "user1",
		EntityID:  "entity1",
		Rating:    6,
		Comment:   "fine",
		CreatedAt: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
	}

	cases := []struct {
		name           string
		callerID       string
		callerRole     domain.Role
		rating         *int
		comment        *string
		fetchErr       error
		updateErr      error
		wantErr        error
		wantErrAny     bool
		wantUpdate     bool
		wantAggregated bool
		wantRating     int
		wantComment    string
	}{
		{
			name:           "owner_changes_rating",
			callerID:       "user1",
			callerRole:     domain.RoleUser,
			rating:         intPtr(9),
			wantUpdate:     true,
			wantAggregated: true,
			wantRating:     9,
			wantComment:    "fine",
		},
		{
			name:        "comment_only_skips_aggregation",
			callerID:    "user1",
			callerRole:  domain.RoleUser,
			comment:     strPtr("better than I remembered"),
			wantUpdate:  true,
			wantRating:  6,
			wantComment: "better than I remembered",
		},
		{
			name:        "same_rating_skips_aggregation",
			callerID:    "user1",
			callerRole:  domain.RoleUser,
			rating:      intPtr(6),
			wantUpdate:  true,
			wantRating:  6,
			wantComment: "fine",
		},
		{
			name:           "admin_edits_others_review",
			callerID:       "admin1",
			callerRole:     domain.RoleAdmin,
			rating:         intPtr(2),
			wantUpdate:     true,
			wantAggregated: true,
			wantRating:     2,
			wantComment:    "fine",
		},
		{
			name:       "non_owner_forbidden",
			callerID:   "user2",
			callerRole: domain.RoleUser,
			rating:     intPtr(9),
			wantErr:    domain.ErrForbidden,
		},
		{
			name:       "review_missing",
			callerID:   "user1",
			callerRole: domain.RoleUser,
			fetchErr:   domain.ErrNotFound,
			wantErr:    domain.ErrNotFound,
		},
		{
			name:       "update_error",
			callerID:   "user1",
			callerRole: domain.RoleUser,
			rating:     intPtr(9),
			updateErr:  errors.New("db down"),
			wantErrAny: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockReviewFetcher(t)
			updater := mocks.NewMockReviewUpdater(t)

			fetcher.EXPECT().
				FetchReview(mock.Anything, "review1").
				Return(existing, tc.fetchErr)

			if tc.wantUpdate || tc.updateErr != nil {
				updater.EXPECT().
					UpdateReview(mock.Anything, mock.MatchedBy(func(r domain.Review) bool {
						return r.ID == "review1" &&
							r.Rating == tc.wantRating &&
							r.Comment == tc.wantComment &&
							r.UpdatedAt.After(existing.CreatedAt)
					})).
					Return(tc.updateErr)
			}

			cmd := NewUpdateReview(fetcher, updater, testAggregator(t, "entity1", 8.0, nil))

			resp, err := cmd.Execute(testContext(), UpdateReviewRequest{
				ReviewID:   "review1",
				CallerID:   tc.callerID,
				CallerRole: tc.callerRole,
				Rating:     tc.rating,
				Comment:    tc.comment,
			})

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			if tc.wantErrAny {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tc.wantRating, resp.Review.Rating)
			assert.Equal(t, tc.wantComment, resp.Review.Comment)
			assert.Equal(t, tc.wantAggregated, resp.RatingRefreshed)
		})
	}
}
