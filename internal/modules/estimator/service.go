// README: Price estimator service; runs the fitted models behind the clamp policy.
package estimator

import (
	"context"
	"fmt"
	"log"

	"jdmpulse/internal/modules/features"
)

// Service answers point and quantile price estimates for a vehicle. It owns
// the loaded bundle for the life of the process and is safe for concurrent
// use: every method works on request-scoped values only.
type Service struct {
	bundle  *Bundle
	builder *features.Builder
}

func NewService(bundle *Bundle, builder *features.Builder) *Service {
	return &Service{bundle: bundle, builder: builder}
}

// Features exposes the engineered features for a vehicle, built with the
// service's fitted encoders.
func (s *Service) Features(v features.Vehicle) features.Features {
	return s.builder.Build(v)
}

// LoadedQuantiles reports which quantile models the bundle carries, in
// ascending quantile order.
func (s *Service) LoadedQuantiles() []Quantile {
	var out []Quantile
	for _, q := range Quantiles {
		if _, ok := s.bundle.Quantiles[q]; ok {
			out = append(out, q)
		}
	}
	return out
}

// PredictPoint returns the clamped point estimate in JPY.
func (s *Service) PredictPoint(ctx context.Context, v features.Vehicle) (int64, error) {
	raw, err := s.bundle.Point.Predict(ctx, s.builder.Build(v).Vector())
	if err != nil {
		return 0, fmt.Errorf("estimator: point prediction: %w", err)
	}
	return ClampBid(raw), nil
}

// PredictQuantiles returns clamped estimates for every loaded quantile model.
// A quantile model that fails at predict time is dropped from the result the
// same way a never-loaded one is; only the point model is load-bearing.
func (s *Service) PredictQuantiles(ctx context.Context, v features.Vehicle) map[Quantile]int64 {
	vector := s.builder.Build(v).Vector()
	out := make(map[Quantile]int64, len(s.bundle.Quantiles))
	for q, m := range s.bundle.Quantiles {
		raw, err := m.Predict(ctx, vector)
		if err != nil {
			log.Printf("estimator: quantile %s prediction failed: %v", q, err)
			continue
		}
		out[q] = ClampBid(raw)
	}
	return out
}
