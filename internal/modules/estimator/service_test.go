package estimator

import (
	"context"
	"errors"
	"testing"

	"jdmpulse/internal/modules/features"
)

// predictorFunc adapts a plain function to the Predictor interface.
type predictorFunc func(ctx context.Context, vector []float64) (float64, error)

func (f predictorFunc) Predict(ctx context.Context, vector []float64) (float64, error) {
	return f(ctx, vector)
}

func constPredictor(v float64) Predictor {
	return predictorFunc(func(context.Context, []float64) (float64, error) { return v, nil })
}

func failingPredictor() Predictor {
	return predictorFunc(func(context.Context, []float64) (float64, error) {
		return 0, errors.New("model unavailable")
	})
}

func testVehicle() features.Vehicle {
	return features.Vehicle{Make: "Toyota", Model: "Supra", Year: 2020, MileageKm: 30000, EngineCC: 3000, AuctionGrade: 4.5}
}

func newTestService(point Predictor, quantiles map[Quantile]Predictor) *Service {
	enc := features.NewEncoder([]string{"Honda", "Toyota"})
	modelEnc := features.NewEncoder([]string{"Civic", "Supra"})
	bundle := &Bundle{Point: point, Quantiles: quantiles, MakeEncoder: enc, ModelEncoder: modelEnc}
	return NewService(bundle, features.NewBuilder(2024, enc, modelEnc))
}

func TestPredictPoint_ClampAndTruncate(t *testing.T) {
	tests := []struct {
		name string
		raw  float64
		want int64
	}{
		{"below range", 100, 500_000},
		{"at lower bound", 500_000, 500_000},
		{"in range truncates", 4_200_000.9, 4_200_000},
		{"at upper bound", 15_000_000, 15_000_000},
		{"above range", 99_000_000, 15_000_000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(constPredictor(tt.raw), nil)
			got, err := svc.PredictPoint(context.Background(), testVehicle())
			if err != nil {
				t.Fatalf("PredictPoint: %v", err)
			}
			if got != tt.want {
				t.Errorf("PredictPoint = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPredictPoint_ErrorPropagates(t *testing.T) {
	svc := newTestService(failingPredictor(), nil)
	if _, err := svc.PredictPoint(context.Background(), testVehicle()); err == nil {
		t.Fatal("PredictPoint swallowed the point model error")
	}
}

func TestPredictQuantiles_SubsetAndFailureTolerance(t *testing.T) {
	svc := newTestService(constPredictor(3_000_000), map[Quantile]Predictor{
		Q20: constPredictor(2_000_000),
		Q50: failingPredictor(),
		Q80: constPredictor(99_000_000),
	})

	got := svc.PredictQuantiles(context.Background(), testVehicle())
	if len(got) != 2 {
		t.Fatalf("got %d quantiles, want 2 (failed q50 dropped)", len(got))
	}
	if got[Q20] != 2_000_000 {
		t.Errorf("q20 = %d, want 2000000", got[Q20])
	}
	if got[Q80] != 15_000_000 {
		t.Errorf("q80 = %d, want clamped 15000000", got[Q80])
	}
}

func TestPredictQuantiles_NoneLoaded(t *testing.T) {
	svc := newTestService(constPredictor(3_000_000), nil)
	if got := svc.PredictQuantiles(context.Background(), testVehicle()); len(got) != 0 {
		t.Errorf("got %d quantiles, want none", len(got))
	}
}

func TestLoadedQuantiles_AscendingOrder(t *testing.T) {
	svc := newTestService(constPredictor(1), map[Quantile]Predictor{
		Q80: constPredictor(1),
		Q20: constPredictor(1),
	})
	got := svc.LoadedQuantiles()
	if len(got) != 2 || got[0] != Q20 || got[1] != Q80 {
		t.Errorf("LoadedQuantiles = %v, want [q20 q80]", got)
	}
}
