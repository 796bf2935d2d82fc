// README: Analysis orchestrator; composes estimate, recommendation, and duty breakdown.
package analysis

import (
	"context"
	"fmt"

	"jdmpulse/internal/modules/bidding"
	"jdmpulse/internal/modules/duty"
	"jdmpulse/internal/modules/estimator"
)

// Service ties the engine together for one analyze call. Stateless per
// request; safe for concurrent use.
type Service struct {
	estimator       *estimator.Service
	calc            *duty.Calculator
	platformFeeRate float64
	defaultWinProb  float64
}

func NewService(est *estimator.Service, calc *duty.Calculator, platformFeeRate, defaultWinProb float64) *Service {
	return &Service{
		estimator:       est,
		calc:            calc,
		platformFeeRate: platformFeeRate,
		defaultWinProb:  defaultWinProb,
	}
}

// Analyze produces the full result for one vehicle. The bid that gets costed
// out is resolved in order: caller bid if non-zero, otherwise the
// recommendation at the caller's (or default) target win probability. The
// point estimate is always computed for display.
func (s *Service) Analyze(ctx context.Context, req Request) (Result, error) {
	point, err := s.estimator.PredictPoint(ctx, req.Vehicle)
	if err != nil {
		return Result{}, fmt.Errorf("analysis: %w", err)
	}
	quantiles := s.estimator.PredictQuantiles(ctx, req.Vehicle)

	target := req.TargetWinProb
	if target == 0 {
		target = s.defaultWinProb
	}
	recommended := bidding.Recommend(point, quantiles, target)

	bid := req.UserBidJPY
	var userBid *int64
	if bid != 0 {
		userBid = &req.UserBidJPY
	} else {
		bid = recommended
	}

	res := Result{
		Breakdown:              s.calc.Compute(bid, req.Vehicle),
		PredictedWinningBidJPY: point,
		UserBidJPY:             userBid,
		BidUsedForCalculation:  bid,
		RecommendedBidJPY:      recommended,
	}
	if v, ok := quantiles[estimator.Q20]; ok {
		res.Q20JPY = &v
	}
	if v, ok := quantiles[estimator.Q50]; ok {
		res.Q50JPY = &v
	}
	if v, ok := quantiles[estimator.Q80]; ok {
		res.Q80JPY = &v
	}

	// Presentation-layer fee on top of the breakdown, converted at the same
	// rate; deliberately not part of the duty cascade.
	res.PlatformFeeBDT = int64(float64(bid) * s.calc.JPYToBDT() * s.platformFeeRate)
	res.TotalInclPlatformBDT = res.TotalLandedCostBDT + res.PlatformFeeBDT

	return res, nil
}
