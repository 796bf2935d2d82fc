// README: Analysis request/result types; the result extends the cost breakdown.
package analysis

import (
	"jdmpulse/internal/modules/duty"
	"jdmpulse/internal/modules/features"
)

// Request is one analysis invocation. UserBidJPY of 0 means "no caller bid";
// TargetWinProb of 0 means "use the configured default".
type Request struct {
	Vehicle       features.Vehicle
	UserBidJPY    int64
	TargetWinProb float64
}

// Result is the full analysis payload: the duty breakdown computed for the
// resolved bid, the estimates that informed it, and the platform fee lines.
// The embedded breakdown keeps the original nested schema intact on the wire.
type Result struct {
	duty.Breakdown

	PredictedWinningBidJPY int64  `json:"predicted_winning_bid_jpy"`
	UserBidJPY             *int64 `json:"user_bid_jpy"`
	BidUsedForCalculation  int64  `json:"bid_used_for_calculation"`

	Q20JPY            *int64 `json:"q20_jpy"`
	Q50JPY            *int64 `json:"q50_jpy"`
	Q80JPY            *int64 `json:"q80_jpy"`
	RecommendedBidJPY int64  `json:"recommended_bid_jpy"`

	PlatformFeeBDT       int64 `json:"platform_fee_bdt"`
	TotalInclPlatformBDT int64 `json:"total_incl_platform_bdt"`
}
