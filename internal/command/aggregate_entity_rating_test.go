package command

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Abotareq/imDb-sub000/internal/datasources/mocks"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), testLogger())
}

func TestAggregateEntityRating_Execute(t *testing.T) {
	cases := []struct {
		name       string
		avg        float64
		count      int64
		avgErr     error
		setErr     error
		wantRating float64
		wantErr    bool
	}{
		{
			name:       "average_of_three_reviews",
			avg:        8.0, // reviews 6, 8, 10
			count:      3,
			wantRating: 8.0,
		},
		{
			name:       "rounds_to_one_decimal",
			avg:        7.666666,
			count:      3,
			wantRating: 7.7,
		},
		{
			name:       "rounds_half_up",
			avg:        7.25,
			count:      2,
			wantRating: 7.3,
		},
		{
			name:       "no_reviews_resets_to_zero",
			avg:        0,
			count:      0,
			wantRating: 0,
		},
		{
			name:    "averager_error",
			avgErr:  errors.New("db down"),
			wantErr: true,
		},
		{
			name:    "setter_error",
			avg:     5,
			count:   1,
			setErr:  errors.New("db down"),
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			averager := mocks.NewMockEntityRatingAverager(t)
			setter := mocks.NewMockEntityRatingSetter(t)

			averager.EXPECT().
				AverageEntityRating(mock.Anything, "entity1").
				Return(tc.avg, tc.count, tc.avgErr)

			if tc.avgErr == nil {
				setter.EXPECT().
					SetEntityRating(mock.Anything, "entity1", tc.wantRating).
					Return(tc.setErr)
			}

			cmd := NewAggregateEntityRating(averager, setter)
			rating, err := cmd.Execute(testContext(), "entity1")

			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantRating, rating)
		})
	}
}

func TestAggregateEntityRating_WritesEvenWhenUnchanged(t *testing.T) {
	averager := mocks.NewMockEntityRatingAverager(t)
	setter := mocks.NewMockEntityRatingSetter(t)

	averager.EXPECT().
		AverageEntityRating(mock.Anything, "entity1").
		Return(8.0, 2, nil)
	setter.EXPECT().
		SetEntityRating(mock.Anything, "entity1", 8.0).
		Return(nil)

	cmd := NewAggregateEntityRating(averager, setter)
	rating, err := cmd.Execute(testContext(), "entity1")
	require.NoError(t, err)
	require.Equal(t, 8.0, rating)
	setter.AssertNumberOfCalls(t, "SetEntityRating", 1)
}
