// README: Bid recommender; interpolates the fitted quantiles at a target win probability.
package bidding

import (
	"jdmpulse/internal/modules/estimator"
)

// Win probability is modeled as monotonically increasing with bid amount.
// The three quantile estimates sample the inverse CDF of the winning-bid
// distribution at 0.2, 0.5 and 0.8; a target in between is answered by linear
// interpolation on the nearest known pair.
const (
	MinWinProb     = 0.2
	MaxWinProb     = 0.8
	DefaultWinProb = 0.7
)

// Recommend returns the bid calibrated to targetWinProb, in JPY, under the
// estimator's clamp policy. The quantile map may hold any subset of the three
// quantiles; point is the last-resort fallback when it is empty.
//
// Quantiles are used exactly as fitted. Independently trained models can
// cross (q20 > q50), which then shows up in the recommendation curve; sorting
// them here would hide a model-quality problem instead of surfacing it.
func Recommend(point int64, quantiles map[estimator.Quantile]int64, targetWinProb float64) int64 {
	if len(quantiles) == 0 {
		return estimator.ClampBid(float64(point))
	}

	p := targetWinProb
	if p < MinWinProb {
		p = MinWinProb
	}
	if p > MaxWinProb {
		p = MaxWinProb
	}

	q20, ok20 := quantiles[estimator.Q20]
	q50, ok50 := quantiles[estimator.Q50]
	q80, ok80 := quantiles[estimator.Q80]

	var rec float64
	switch {
	case p <= 0.5 && ok20 && ok50:
		t := (p - 0.2) / 0.3
		rec = float64(q20) + t*float64(q50-q20)
	case p > 0.5 && ok50 && ok80:
		t := (p - 0.5) / 0.3
		rec = float64(q50) + t*float64(q80-q50)
	case ok50:
		rec = float64(q50)
	case ok80:
		rec = float64(q80)
	case ok20:
		rec = float64(q20)
	default:
		rec = float64(point)
	}
	return estimator.ClampBid(rec)
}
