package settle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wanderfolk/tripledger/internal/settle"
)

func TestDisplayName(t *testing.T) {
	names := map[settle.ParticipantID]string{
		"f47ac10b-58cc-4372-a567-0e02b2c3d479": "Lina",
		"blank-name":                           "",
	}

	type testCase struct {
		name   string
		id     settle.ParticipantID
		viewer settle.ParticipantID
		want   string
	}

	tests := []testCase{
		{
			name:   "Viewer",
			id:     "f47ac10b-58cc-4372-a567-0e02b2c3d479",
			viewer: "f47ac10b-58cc-4372-a567-0e02b2c3d479",
			want:   "you",
		},
		{
			name:   "KnownName",
			id:     "f47ac10b-58cc-4372-a567-0e02b2c3d479",
			viewer: "someone-else",
			want:   "Lina",
		},
		{
			name:   "UnknownIDTruncated",
			id:     "9b2f8c1d-aaaa-bbbb-cccc-ddddeeeeffff",
			viewer: "someone-else",
			want:   "9b2f8c…",
		},
		{
			name:   "EmptyNameFallsThrough",
			id:     "blank-name",
			viewer: "someone-else",
			want:   "blank-…",
		},
		{
			name:   "ShortIDKeptWhole",
			id:     "bob",
			viewer: "alice",
			want:   "bob",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := settle.DisplayName(tt.id, tt.viewer, names)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisplayName_NilNames(t *testing.T) {
	got := settle.DisplayName("wanderer-01", "viewer", nil)
	assert.Equal(t, "wander…", got)
}
