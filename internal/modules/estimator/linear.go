// README: In-process predictor backed by an exported linear model artifact.
package estimator

import (
	"context"
	"fmt"
)

// linearModel evaluates a linear regression exported by the training
// pipeline: intercept plus one coefficient per feature column.
type linearModel struct {
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
}

func (m *linearModel) Predict(_ context.Context, vector []float64) (float64, error) {
	if len(vector) != len(m.Coefficients) {
		return 0, fmt.Errorf("estimator: feature vector has %d columns, model expects %d", len(vector), len(m.Coefficients))
	}
	out := m.Intercept
	for i, c := range m.Coefficients {
		out += c * vector[i]
	}
	return out, nil
}
