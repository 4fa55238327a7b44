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

func testAggregator(t *testing.T, entityID string, rating float64, err error) *AggregateEntityRating {
	t.Helper()

	averager := mocks.NewMockEntityRatingAverager(t)
	setter := mocks.NewMockEntityRatingSetter(t)
	averager.EXPECT().
		AverageEntityRating(mock.Anything, entityID).
		Return(rating, 1, err).
		Maybe()
	setter.EXPECT().
		SetEntityRating(mock.Anything, entityID, rating).
		Return(nil).
		Maybe()
	return NewAggregateEntityRating(averager, setter)
}

func TestCreateReview_Execute(t *testing.T) {
	cases := []struct {
		name          string
		entityErr     error
		existing      *domain.Review
		existingErr   error
		createErr     error
		aggregateErr  error
		wantErr       error
		wantErrAny    bool
		wantRefreshed bool
	}{
		{
			name:          "creates_and_refreshes_rating",
			existingErr:   domain.ErrNotFound,
			wantRefreshed: true,
		},
		{
			name:      "entity_missing",
			entityErr: domain.ErrNotFound,
			wantErr:   domain.ErrNotFound,
		},
		{
			name:     "duplicate_review_conflicts",
			existing: &domain.Review{ID: "existing1", UserID: "user1", EntityID: "entity1"},
			wantErr:  domain.ErrConflict,
		},
		{
			name:        "existing_check_error",
			existingErr: errors.New("db down"),
			wantErrAny:  true,
		},
		{
			name:        "create_error",
			existingErr: domain.ErrNotFound,
			createErr:   errors.New("db down"),
			wantErrAny:  true,
		},
		{
			name:          "aggregation_failure_keeps_review",
			existingErr:   domain.ErrNotFound,
			aggregateErr:  errors.New("db down"),
			wantRefreshed: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entityFetcher := mocks.NewMockEntityFetcher(t)
			dupFetcher := mocks.NewMockUserEntityReviewFetcher(t)
			creator := mocks.NewMockReviewCreator(t)

			entityFetcher.EXPECT().
				FetchEntity(mock.Anything, "entity1").
				Return(domain.Entity{ID: "entity1"}, tc.entityErr)

			if tc.entityErr == nil {
				var existing domain.Review
				if tc.existing != nil {
					existing = *tc.existing
				}
				dupFetcher.EXPECT().
					FetchUserEntityReview(mock.Anything, "user1", "entity1").
					Return(existing, tc.existingErr)
			}

			if tc.entityErr == nil && tc.existing == nil && errors.Is(tc.existingErr, domain.ErrNotFound) {
				creator.EXPECT().
					CreateReview(mock.Anything, mock.MatchedBy(func(r domain.Review) bool {
						return r.UserID == "user1" &&
							r.EntityID == "entity1" &&
							r.Rating == 8 &&
							r.Comment == "great" &&
							domain.ValidID(r.ID)
					})).
					Return(tc.createErr)
			}

			cmd := NewCreateReview(
				entityFetcher,
				dupFetcher,
				creator,
				testAggregator(t, "entity1", 8.0, tc.aggregateErr),
			)

			resp, err := cmd.Execute(testContext(), CreateReviewRequest{
				UserID:   "user1",
				EntityID: "entity1",
				Rating:   8,
				Comment:  "great",
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

			assert.Equal(t, "user1", resp.Review.UserID)
			assert.Equal(t, 8, resp.Review.Rating)
			assert.Equal(t, tc.wantRefreshed, resp.RatingRefreshed)
			if tc.wantRefreshed {
				assert.Equal(t, 8.0, resp.EntityRating)
			}
		})
	}
}
