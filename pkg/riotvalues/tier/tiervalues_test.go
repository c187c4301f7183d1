package tiervalues

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRating(t *testing.T) {
	tests := []struct {
		name     string
		tier     string
		rank     string
		lp       int
		expected int
	}{
		{name: "iron four", tier: "IRON", rank: "IV", lp: 0, expected: 0},
		{name: "gold two", tier: "gold", rank: "ii", lp: 40, expected: 35040},
		{name: "master ignores division", tier: "MASTER", rank: "I", lp: 120, expected: 70120},
		{name: "unknown division", tier: "SILVER", rank: "V", lp: 99, expected: 20000},
		{name: "unknown tier", tier: "WOOD", rank: "I", lp: 10, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Rating(tt.tier, tt.rank, tt.lp))
		})
	}
}
