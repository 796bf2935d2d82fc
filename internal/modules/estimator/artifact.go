// README: Model artifact loader; builds the predictor bundle at process start.
package estimator

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"jdmpulse/internal/modules/features"
)

// Artifact file names as published by the training pipeline.
const (
	pointModelFile   = "bid_predictor.json"
	makeEncoderFile  = "make_encoder.json"
	modelEncoderFile = "model_encoder.json"
)

var ErrMissingArtifact = errors.New("estimator: required model artifact missing")

// Bundle holds every fitted component the engine consumes: the mandatory
// point model, whichever quantile models exist, and the two label encoders.
// It is loaded once at startup and shared read-only across requests.
type Bundle struct {
	Point        Predictor
	Quantiles    map[Quantile]Predictor
	MakeEncoder  *features.Encoder
	ModelEncoder *features.Encoder
}

type encoderArtifact struct {
	Classes []string `json:"classes"`
}

// LoadBundle reads the artifact directory. The point model and both encoders
// are mandatory; a missing or unreadable quantile model only drops that
// quantile from the bundle.
func LoadBundle(dir string) (*Bundle, error) {
	point, err := loadModel(filepath.Join(dir, pointModelFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingArtifact, pointModelFile, err)
	}

	makeEnc, err := loadEncoder(filepath.Join(dir, makeEncoderFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingArtifact, makeEncoderFile, err)
	}
	modelEnc, err := loadEncoder(filepath.Join(dir, modelEncoderFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingArtifact, modelEncoderFile, err)
	}

	b := &Bundle{
		Point:        point,
		Quantiles:    make(map[Quantile]Predictor),
		MakeEncoder:  makeEnc,
		ModelEncoder: modelEnc,
	}
	for _, q := range Quantiles {
		path := filepath.Join(dir, quantileModelFile(q))
		m, err := loadModel(path)
		if err != nil {
			if !os.IsNotExist(err) {
				log.Printf("estimator: skipping quantile model %s: %v", q, err)
			}
			continue
		}
		b.Quantiles[q] = m
	}
	return b, nil
}

func quantileModelFile(q Quantile) string {
	return "bid_predictor_" + string(q) + ".json"
}

func loadModel(path string) (Predictor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m linearModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	if len(m.Coefficients) == 0 {
		return nil, fmt.Errorf("parse %s: no coefficients", filepath.Base(path))
	}
	return &m, nil
}

func loadEncoder(path string) (*features.Encoder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var a encoderArtifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	if len(a.Classes) == 0 {
		return nil, fmt.Errorf("parse %s: empty class list", filepath.Base(path))
	}
	return features.NewEncoder(a.Classes), nil
}
