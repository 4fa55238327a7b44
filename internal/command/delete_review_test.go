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

func TestDeleteReview_Execute(t *testing.T) {
	existing := domain.Review{ID: "review1", UserID: "user1", EntityID: "entity1", Rating: 6}

	cases := []struct {
		name          string
		callerID      string
		callerRole    domain.Role
		fetchErr      error
		deleteErr     error
		aggregateErr  error
		wantErr       error
		wantErrAny    bool
		wantDelete    bool
		wantRefreshed bool
	}{
		{
			name:          "owner_deletes",
			callerID:      "user1",
			callerRole:    domain.RoleUser,
			wantDelete:    true,
			wantRefreshed: true,
		},
		{
			name:          "admin_deletes_others_review",
			callerID:      "admin1",
			callerRole:    domain.RoleAdmin,
			wantDelete:    true,
			wantRefreshed: true,
		},
		{
			name:       "non_owner_forbidden",
			callerID:   "user2",
			callerRole: domain.RoleUser,
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
			name:       "delete_error",
			callerID:   "user1",
			callerRole: domain.RoleUser,
			deleteErr:  errors.New("db down"),
			wantErrAny: true,
		},
		{
			name:          "aggregation_failure_keeps_delete",
			callerID:      "user1",
			callerRole:    domain.RoleUser,
			aggregateErr:  errors.New("db down"),
			wantDelete:    true,
			wantRefreshed: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockReviewFetcher(t)
			deleter := mocks.NewMockReviewDeleter(t)

			fetcher.EXPECT().
				FetchReview(mock.Anything, "review1").
				Return(existing, tc.fetchErr)

			if tc.wantDelete || tc.deleteErr != nil {
				deleter.EXPECT().
					DeleteReview(mock.Anything, "review1").
					Return(tc.deleteErr)
			}

			cmd := NewDeleteReview(fetcher, deleter, testAggregator(t, "entity1", 7.5, tc.aggregateErr))

			resp, err := cmd.Execute(testContext(), DeleteReviewRequest{
				ReviewID:   "review1",
				CallerID:   tc.callerID,
				CallerRole: tc.callerRole,
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

			assert.Equal(t, "entity1", resp.EntityID)
			assert.Equal(t, tc.wantRefreshed, resp.RatingRefreshed)
		})
	}
}
