package models

import (
	"math"
	"testing"
)

func TestComputeOverall(t *testing.T) {
	tests := []struct {
		name   string
		review Review
		want   float64
	}{
		{
			name:   "all equal",
			review: Review{Gameplay: 7, Graphics: 7, Narrative: 7, Audio: 7, Performance: 7},
			want:   7,
		},
		{
			name:   "mixed scores",
			review: Review{Gameplay: 10, Graphics: 8, Narrative: 6, Audio: 4, Performance: 2},
			want:   6,
		},
		{
			name:   "all zero",
			review: Review{},
			want:   0,
		},
		{
			name:   "fractional mean",
			review: Review{Gameplay: 1, Graphics: 1, Narrative: 1, Audio: 1, Performance: 2},
			want:   1.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.review.ComputeOverall()
			if math.Abs(tt.review.OverallScore-tt.want) > 1e-9 {
				t.Errorf("OverallScore = %f, want %f", tt.review.OverallScore, tt.want)
			}
		})
	}
}

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{499, 1},
		{500, 2},
		{999, 2},
		{1000, 3},
		{2500, 6},
	}

	for _, tt := range tests {
		if got := LevelForXP(tt.xp); got != tt.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}
