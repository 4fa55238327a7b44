package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreferences_TopType(t *testing.T) {
	cases := []struct {
		name        string
		preferences Preferences
		want        EntityType
	}{
		{
			name:        "highest_scoring_type_wins",
			preferences: Preferences{"movie": 1.8, "tv": 0.6, "Drama": 5.0},
			want:        EntityTypeMovie,
		},
		{
			name:        "genre_keys_ignored",
			preferences: Preferences{"Drama": 5.0},
			want:        "",
		},
		{
			name:        "empty_map",
			preferences: Preferences{},
			want:        "",
		},
		{
			name:        "nil_map",
			preferences: nil,
			want:        "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.preferences.TopType())
		})
	}
}

func TestPreferences_TopGenre(t *testing.T) {
	cases := []struct {
		name        string
		preferences Preferences
		want        string
	}{
		{
			name:        "highest_scoring_genre_wins",
			preferences: Preferences{"movie": 9.0, "Drama": 0.9, "Crime": 0.5},
			want:        "Drama",
		},
		{
			name:        "type_keys_ignored",
			preferences: Preferences{"movie": 9.0, "tv": 3.0},
			want:        "",
		},
		{
			name:        "tie_breaks_alphabetically",
			preferences: Preferences{"Drama": 0.9, "Crime": 0.9},
			want:        "Crime",
		},
		{
			name:        "nil_map",
			preferences: nil,
			want:        "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.preferences.TopGenre())
		})
	}
}
