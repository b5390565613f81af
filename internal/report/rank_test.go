package report

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankNameBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		hours    float64
		expected string
	}{
		{"exactly 80 is Legend", 80.0, "Legend"},
		{"just below 80 is Master", 79.99, "Master"},
		{"exactly 70 is Master", 70, "Master"},
		{"exactly 60 is Elite", 60, "Elite"},
		{"exactly 50 is Veteran", 50, "Veteran"},
		{"exactly 35 is Experienced", 35, "Experienced"},
		{"exactly 25 is Advanced", 25, "Advanced"},
		{"exactly 15 is Intermediate", 15, "Intermediate"},
		{"exactly 10 is Novice", 10, "Novice"},
		{"exactly 1 is Beginner", 1, "Beginner"},
		{"just below 1 is Unranked", 0.999, "Unranked"},
		{"zero is Unranked", 0, "Unranked"},
		{"negative is Unranked", -3, "Unranked"},
		{"far above top threshold is Legend", 500, "Legend"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RankName(tt.hours))
		})
	}
}

func TestRankNameNaN(t *testing.T) {
	assert.Equal(t, "N/A", RankName(math.NaN()))
}
