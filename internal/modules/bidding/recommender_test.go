package bidding

import (
	"testing"

	"jdmpulse/internal/modules/estimator"
)

func fullQuantiles() map[estimator.Quantile]int64 {
	return map[estimator.Quantile]int64{
		estimator.Q20: 2_000_000,
		estimator.Q50: 3_000_000,
		estimator.Q80: 4_500_000,
	}
}

func TestRecommend_Interpolation(t *testing.T) {
	tests := []struct {
		name   string
		target float64
		want   int64
	}{
		{"lower segment midpoint", 0.35, 2_500_000}, // t = (0.35-0.2)/0.3 = 0.5
		{"lower segment start", 0.2, 2_000_000},
		{"median", 0.5, 3_000_000},
		{"upper segment", 0.7, 4_000_000}, // t = (0.7-0.5)/0.3 = 2/3
		{"upper segment end", 0.8, 4_500_000},
		{"clamped below band", 0.05, 2_000_000},
		{"clamped above band", 0.95, 4_500_000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recommend(3_100_000, fullQuantiles(), tt.target)
			if got != tt.want {
				t.Errorf("Recommend(%v) = %d, want %d", tt.target, got, tt.want)
			}
		})
	}
}

func TestRecommend_FallbackChain(t *testing.T) {
	tests := []struct {
		name      string
		quantiles map[estimator.Quantile]int64
		target    float64
		want      int64
	}{
		{
			name:      "no quantiles falls back to point",
			quantiles: nil,
			target:    0.7,
			want:      3_100_000,
		},
		{
			name:      "needed pair incomplete prefers q50",
			quantiles: map[estimator.Quantile]int64{estimator.Q50: 3_000_000, estimator.Q20: 2_000_000},
			target:    0.7, // upper pair needs q80
			want:      3_000_000,
		},
		{
			name:      "only q80",
			quantiles: map[estimator.Quantile]int64{estimator.Q80: 4_500_000},
			target:    0.3,
			want:      4_500_000,
		},
		{
			name:      "only q20",
			quantiles: map[estimator.Quantile]int64{estimator.Q20: 2_000_000},
			target:    0.7,
			want:      2_000_000,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recommend(3_100_000, tt.quantiles, tt.target)
			if got != tt.want {
				t.Errorf("Recommend = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRecommend_OutputAlwaysInRange(t *testing.T) {
	// Quantiles sit at the clamp bounds; every target probability must still
	// produce a value inside the plausible range.
	quantiles := map[estimator.Quantile]int64{
		estimator.Q20: estimator.MinBidJPY,
		estimator.Q50: estimator.MaxBidJPY,
		estimator.Q80: estimator.MaxBidJPY,
	}
	for p := 0.2; p <= 0.8; p += 0.05 {
		got := Recommend(estimator.MaxBidJPY, quantiles, p)
		if got < estimator.MinBidJPY || got > estimator.MaxBidJPY {
			t.Fatalf("Recommend(p=%v) = %d, outside [%d, %d]", p, got, estimator.MinBidJPY, estimator.MaxBidJPY)
		}
	}
}

func TestRecommend_CrossedQuantilesPreserved(t *testing.T) {
	// Independently fitted quantiles can cross; the interpolation uses them
	// as-is rather than sorting.
	quantiles := map[estimator.Quantile]int64{
		estimator.Q20: 3_500_000,
		estimator.Q50: 3_000_000,
	}
	got := Recommend(3_100_000, quantiles, 0.35)
	if got != 3_250_000 {
		t.Errorf("Recommend = %d, want 3250000 (midpoint of crossed pair)", got)
	}
}
