package estimator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeArtifact(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

// writeBaseArtifacts lays down the mandatory artifacts: the point model and
// both encoders.
func writeBaseArtifacts(t *testing.T, dir string) {
	t.Helper()
	writeArtifact(t, dir, pointModelFile,
		`{"intercept": 1000000, "coefficients": [0, 0, 0, 0, 0, 0, 0, 0, 0]}`)
	writeArtifact(t, dir, makeEncoderFile, `{"classes": ["Honda", "Toyota"]}`)
	writeArtifact(t, dir, modelEncoderFile, `{"classes": ["Civic", "Supra"]}`)
}

func TestLoadBundle_PointOnly(t *testing.T) {
	dir := t.TempDir()
	writeBaseArtifacts(t, dir)

	b, err := LoadBundle(dir)
	if err != nil {
		t.Fatalf("LoadBundle: %v", err)
	}
	if b.Point == nil {
		t.Fatal("point model not loaded")
	}
	if len(b.Quantiles) != 0 {
		t.Errorf("loaded %d quantile models, want 0", len(b.Quantiles))
	}
	if b.MakeEncoder.Len() != 2 || b.ModelEncoder.Len() != 2 {
		t.Error("encoders not loaded with fitted classes")
	}
}

func TestLoadBundle_OptionalQuantiles(t *testing.T) {
	dir := t.TempDir()
	writeBaseArtifacts(t, dir)
	writeArtifact(t, dir, quantileModelFile(Q20),
		`{"intercept": 800000, "coefficients": [0, 0, 0, 0, 0, 0, 0, 0, 0]}`)
	writeArtifact(t, dir, quantileModelFile(Q80),
		`{"intercept": 1200000, "coefficients": [0, 0, 0, 0, 0, 0, 0, 0, 0]}`)

	b, err := LoadBundle(dir)
	if err != nil {
		t.Fatalf("LoadBundle: %v", err)
	}
	if _, ok := b.Quantiles[Q20]; !ok {
		t.Error("q20 missing from bundle")
	}
	if _, ok := b.Quantiles[Q50]; ok {
		t.Error("q50 present in bundle but no artifact exists")
	}
	if _, ok := b.Quantiles[Q80]; !ok {
		t.Error("q80 missing from bundle")
	}
}

func TestLoadBundle_CorruptQuantileIsSkipped(t *testing.T) {
	dir := t.TempDir()
	writeBaseArtifacts(t, dir)
	writeArtifact(t, dir, quantileModelFile(Q50), `{not json`)

	b, err := LoadBundle(dir)
	if err != nil {
		t.Fatalf("LoadBundle: %v", err)
	}
	if _, ok := b.Quantiles[Q50]; ok {
		t.Error("corrupt q50 artifact should be skipped, not loaded")
	}
}

func TestLoadBundle_MissingPointModelIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, makeEncoderFile, `{"classes": ["Honda"]}`)
	writeArtifact(t, dir, modelEncoderFile, `{"classes": ["Civic"]}`)

	if _, err := LoadBundle(dir); !errors.Is(err, ErrMissingArtifact) {
		t.Fatalf("LoadBundle err = %v, want ErrMissingArtifact", err)
	}
}

func TestLoadBundle_MissingEncoderIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, pointModelFile,
		`{"intercept": 1000000, "coefficients": [0, 0, 0, 0, 0, 0, 0, 0, 0]}`)
	writeArtifact(t, dir, makeEncoderFile, `{"classes": ["Honda"]}`)

	if _, err := LoadBundle(dir); !errors.Is(err, ErrMissingArtifact) {
		t.Fatalf("LoadBundle err = %v, want ErrMissingArtifact", err)
	}
}

func TestLinearModel_Predict(t *testing.T) {
	m := &linearModel{Intercept: 100, Coefficients: []float64{2, 3}}

	got, err := m.Predict(context.Background(), []float64{10, 20})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if got != 180 {
		t.Errorf("Predict = %v, want 180", got)
	}

	if _, err := m.Predict(context.Background(), []float64{1}); err == nil {
		t.Error("Predict accepted a vector with the wrong column count")
	}
}
