// README: Predictor contract, quantile capability set, and output clamp policy.
package estimator

import "context"

// Quantile names a percentile of the winning-bid distribution.
type Quantile string

const (
	Q20 Quantile = "q20"
	Q50 Quantile = "q50"
	Q80 Quantile = "q80"
)

// Quantiles lists the quantile models the training pipeline may publish, in
// ascending order. Any subset (including none) can be present at runtime.
var Quantiles = []Quantile{Q20, Q50, Q80}

// Predictor is the opaque contract every fitted model satisfies: a feature
// vector in training column order goes in, a raw JPY estimate comes out.
type Predictor interface {
	Predict(ctx context.Context, vector []float64) (float64, error)
}

// Raw model output is clamped to the domain-plausible auction price range to
// guard against extrapolation pathologies.
const (
	MinBidJPY int64 = 500_000
	MaxBidJPY int64 = 15_000_000
)

// ClampBid applies the shared output policy: clamp to [MinBidJPY, MaxBidJPY]
// and truncate toward zero.
func ClampBid(v float64) int64 {
	if v < float64(MinBidJPY) {
		return MinBidJPY
	}
	if v > float64(MaxBidJPY) {
		return MaxBidJPY
	}
	return int64(v)
}
