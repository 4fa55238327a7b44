package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		assert.True(t, ValidID(id), "generated ID should be well-formed: %s", id)
		assert.False(t, seen[id], "generated IDs should not repeat: %s", id)
		seen[id] = true
	}
}

func TestValidID(t *testing.T) {
	cases := []struct {
		name string
		id   string
		want bool
	}{
		{name: "well_formed", id: "507f1f77bcf86cd799439011", want: true},
		{name: "too_short", id: "507f1f77bcf86cd7994390", want: false},
		{name: "too_long", id: "507f1f77bcf86cd79943901122", want: false},
		{name: "non_hex", id: "507f1f77bcf86cd79943901z", want: false},
		{name: "empty", id: "", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidID(tc.id))
		})
	}
}
