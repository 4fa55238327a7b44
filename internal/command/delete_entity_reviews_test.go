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

func TestDeleteEntityReviews_Execute(t *testing.T) {
	cases := []struct {
		name       string
		entityErr  error
		deleted    int64
		deleteErr  error
		resetErr   error
		wantErr    error
		wantErrAny bool
		wantReset  bool
	}{
		{
			name:      "deletes_and_resets_rating",
			deleted:   3,
			wantReset: true,
		},
		{
			name:      "no_reviews_still_resets",
			deleted:   0,
			wantReset: true,
		},
		{
			name:      "entity_missing",
			entityErr: domain.ErrNotFound,
			wantErr:   domain.ErrNotFound,
		},
		{
			name:       "delete_error",
			deleteErr:  errors.New("db down"),
			wantErrAny: true,
		},
		{
			name:      "reset_failure_is_not_fatal",
			deleted:   2,
			resetErr:  errors.New("db down"),
			wantReset: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entityFetcher := mocks.NewMockEntityFetcher(t)
			deleter := mocks.NewMockEntityReviewsDeleter(t)
			setter := mocks.NewMockEntityRatingSetter(t)

			entityFetcher.EXPECT().
				FetchEntity(mock.Anything, "entity1").
				Return(domain.Entity{ID: "entity1"}, tc.entityErr)

			if tc.entityErr == nil {
				deleter.EXPECT().
					DeleteEntityReviews(mock.Anything, "entity1").
					Return(tc.deleted, tc.deleteErr)
			}

			if tc.entityErr == nil && tc.deleteErr == nil {
				setter.EXPECT().
					SetEntityRating(mock.Anything, "entity1", 0.0).
					Return(tc.resetErr)
			}

			cmd := NewDeleteEntityReviews(entityFetcher, deleter, setter)

			resp, err := cmd.Execute(testContext(), DeleteEntityReviewsRequest{EntityID: "entity1"})

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			if tc.wantErrAny {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tc.deleted, resp.DeletedCount)
			assert.Equal(t, tc.wantReset, resp.RatingReset)
		})
	}
}
