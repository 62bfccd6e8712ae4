package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierForScore_Boundaries(t *testing.T) {
	cases := []struct {
		score int
		name  string
		color string
	}{
		{100, "positive", "#22c55e"},
		{75, "positive", "#22c55e"},
		{74, "moderate", "#f59e0b"},
		{54, "moderate", "#f59e0b"},
		{50, "moderate", "#f59e0b"},
		{49, "urgent", "#ef4444"},
		{0, "urgent", "#ef4444"},
	}

	for _, tc := range cases {
		tier := TierForScore(tc.score)
		assert.Equal(t, tc.name, tier.Name, "score %d", tc.score)
		assert.Equal(t, tc.color, tier.Color, "score %d", tc.score)
		assert.NotEmpty(t, tier.Message)
	}
}
