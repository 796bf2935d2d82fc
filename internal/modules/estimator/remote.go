// README: Remote predictor backend; talks to an external model service over HTTP.
package estimator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"
)

// ErrModelService marks failures of the remote model service so the
// transport layer can answer 503 instead of a generic 500.
var ErrModelService = errors.New("estimator: model service unavailable")

// remotePredictor proxies Predict calls to a model service that hosts the
// fitted regressors (the same service the training pipeline deploys to).
type remotePredictor struct {
	client *http.Client
	url    string
}

type remotePredictRequest struct {
	Features []float64 `json:"features"`
}

type remotePredictResponse struct {
	Prediction float64 `json:"prediction"`
}

func (p *remotePredictor) Predict(ctx context.Context, vector []float64) (float64, error) {
	body, err := json.Marshal(remotePredictRequest{Features: vector})
	if err != nil {
		return 0, fmt.Errorf("estimator: marshal predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("estimator: build predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrModelService, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: status %d", ErrModelService, res.StatusCode)
	}
	var out remotePredictResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("estimator: decode predict response: %w", err)
	}
	return out.Prediction, nil
}

type remoteModelsResponse struct {
	Models []string `json:"models"`
}

// LoadRemoteBundle discovers which models the remote service hosts and wires
// a remote predictor for each. Encoders still come from the local artifact
// directory: label encoding always happens in-process.
func LoadRemoteBundle(ctx context.Context, baseURL, artifactDir string) (*Bundle, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	client := &http.Client{Timeout: 5 * time.Second}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/models", nil)
	if err != nil {
		return nil, fmt.Errorf("estimator: build models request: %w", err)
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("estimator: list remote models: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("estimator: model service returned %d listing models", res.StatusCode)
	}
	var listing remoteModelsResponse
	if err := json.NewDecoder(res.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("estimator: decode models response: %w", err)
	}

	hosted := make(map[string]bool, len(listing.Models))
	for _, name := range listing.Models {
		hosted[name] = true
	}
	if !hosted["point"] {
		return nil, fmt.Errorf("%w: remote service does not host the point model", ErrMissingArtifact)
	}

	makeEnc, err := loadEncoder(filepath.Join(artifactDir, makeEncoderFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingArtifact, makeEncoderFile, err)
	}
	modelEnc, err := loadEncoder(filepath.Join(artifactDir, modelEncoderFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingArtifact, modelEncoderFile, err)
	}

	b := &Bundle{
		Point:        &remotePredictor{client: client, url: baseURL + "/predict/point"},
		Quantiles:    make(map[Quantile]Predictor),
		MakeEncoder:  makeEnc,
		ModelEncoder: modelEnc,
	}
	for _, q := range Quantiles {
		if hosted[string(q)] {
			b.Quantiles[q] = &remotePredictor{client: client, url: baseURL + "/predict/" + string(q)}
		}
	}
	return b, nil
}
