package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMatchGroup(t *testing.T) {
	tests := []struct {
		name      string
		anchor    int
		before    int
		after     int
		lastIndex int
		want      MatchGroup
	}{
		{
			name:      "no context",
			anchor:    3,
			lastIndex: 9,
			want:      MatchGroup{Anchor: 3, Start: 3, End: 3},
		},
		{
			name:      "window inside bounds",
			anchor:    2,
			before:    1,
			after:     1,
			lastIndex: 4,
			want:      MatchGroup{Anchor: 2, Start: 1, End: 3},
		},
		{
			name:      "clipped at start",
			anchor:    1,
			before:    5,
			lastIndex: 4,
			want:      MatchGroup{Anchor: 1, Start: 0, End: 1},
		},
		{
			name:      "clipped at end",
			anchor:    3,
			after:     5,
			lastIndex: 4,
			want:      MatchGroup{Anchor: 3, Start: 3, End: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewMatchGroup(tt.anchor, tt.before, tt.after, tt.lastIndex)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Contains(tt.anchor))
			assert.Equal(t, min(tt.anchor, tt.before)+min(tt.lastIndex-tt.anchor, tt.after)+1, got.Len())
		})
	}
}

func TestMatchGroupContains(t *testing.T) {
	g := MatchGroup{Anchor: 2, Start: 1, End: 3}

	assert.False(t, g.Contains(0))
	assert.True(t, g.Contains(1))
	assert.True(t, g.Contains(3))
	assert.False(t, g.Contains(4))
}
