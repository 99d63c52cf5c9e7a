// Package ml loads the pre-trained heart-disease classifier artifact and
// answers prediction calls against it.
//
// The artifact is treated as an opaque black box: it is produced by an
// external training pipeline, re-serialized as JSON, and never trained,
// tuned, or modified here. A Classifier is immutable after Load and is safe
// for concurrent use.
package ml

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/JahangirOsman/hdp-webapp/internal/logger"
	"github.com/JahangirOsman/hdp-webapp/models"
)

// Artifact is the on-disk representation of the serialized classifier:
// standardization parameters and logistic-regression weights over the 13
// clinical features, in training column order.
type Artifact struct {
	// Kind names the model family the artifact was exported from.
	Kind string `json:"kind"`

	// Features lists the feature names in the exact column order the
	// weights were fitted on.
	Features []string `json:"features"`

	// Means and Scales are the per-feature standardization parameters
	// applied before the linear combination. Empty slices disable scaling.
	Means  []float64 `json:"means"`
	Scales []float64 `json:"scales"`

	// Weights and Intercept define the fitted decision function.
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`

	// Threshold is the probability cut-off separating label 0 from label 1.
	Threshold float64 `json:"threshold"`
}

// Classifier answers Predict calls against a loaded [Artifact].
type Classifier struct {
	artifact Artifact
}

// Load deserializes the classifier artifact at path and validates its shape.
//
// A failure here is fatal for the caller: the process cannot serve
// predictions without the artifact, so startup should abort on error.
func Load(path string, log *logger.Logger) (*Classifier, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Err(err).Str("func", "ml.Load").Str("path", path).Msg("error reading model artifact")
		return nil, fmt.Errorf("error reading model artifact: %w", err)
	}

	var artifact Artifact
	if err := json.Unmarshal(raw, &artifact); err != nil {
		log.Err(err).Str("func", "ml.Load").Str("path", path).Msg("error decoding model artifact")
		return nil, fmt.Errorf("error decoding model artifact: %w", err)
	}

	if err := artifact.check(); err != nil {
		log.Err(err).Str("func", "ml.Load").Str("path", path).Msg("model artifact failed shape check")
		return nil, err
	}

	if artifact.Threshold == 0 {
		artifact.Threshold = 0.5
	}

	log.Info().
		Str("func", "ml.Load").
		Str("kind", artifact.Kind).
		Int("features", len(artifact.Features)).
		Msg("model artifact loaded")

	return &Classifier{artifact: artifact}, nil
}

// check verifies the internal consistency of the artifact shape and that the
// features are declared in the canonical column order. An artifact exported
// with reordered or renamed columns is rejected at startup rather than
// silently producing garbage predictions.
func (a Artifact) check() error {
	if len(a.Features) == 0 {
		return fmt.Errorf("%w: no features declared", ErrMalformedArtifact)
	}

	expected := models.FeatureNames()
	if len(a.Features) != len(expected) {
		return fmt.Errorf("%w: %d features declared, want %d", ErrMalformedArtifact, len(a.Features), len(expected))
	}
	for i, name := range expected {
		if a.Features[i] != name {
			return fmt.Errorf("%w: feature %d is %q, want %q", ErrMalformedArtifact, i, a.Features[i], name)
		}
	}

	if len(a.Weights) != len(a.Features) {
		return fmt.Errorf("%w: %d weights for %d features", ErrMalformedArtifact, len(a.Weights), len(a.Features))
	}

	if len(a.Means) != 0 && len(a.Means) != len(a.Features) {
		return fmt.Errorf("%w: %d means for %d features", ErrMalformedArtifact, len(a.Means), len(a.Features))
	}

	if len(a.Scales) != 0 && len(a.Scales) != len(a.Features) {
		return fmt.Errorf("%w: %d scales for %d features", ErrMalformedArtifact, len(a.Scales), len(a.Features))
	}

	for i, s := range a.Scales {
		if s == 0 {
			return fmt.Errorf("%w: zero scale for feature %q", ErrMalformedArtifact, a.Features[i])
		}
	}

	return nil
}

// FeatureNames returns the feature names in artifact column order.
func (c *Classifier) FeatureNames() []string {
	return c.artifact.Features
}

// Predict runs the decision function over one feature vector and returns the
// binary label with its underlying risk score.
//
// The vector must be in artifact column order. The values themselves are
// passed through uninspected; domain validation belongs to the caller.
// Deterministic: identical input always yields the identical result.
func (c *Classifier) Predict(vector []float64) (models.Prediction, error) {
	if len(vector) != len(c.artifact.Features) {
		return models.Prediction{}, fmt.Errorf("%w: got %d values, want %d", ErrBadVectorLength, len(vector), len(c.artifact.Features))
	}

	z := c.artifact.Intercept
	for i, x := range vector {
		if len(c.artifact.Means) != 0 {
			x -= c.artifact.Means[i]
		}
		if len(c.artifact.Scales) != 0 {
			x /= c.artifact.Scales[i]
		}
		z += c.artifact.Weights[i] * x
	}

	score := 1.0 / (1.0 + math.Exp(-z))

	label := 0
	if score >= c.artifact.Threshold {
		label = 1
	}

	return models.Prediction{Label: label, Score: score}, nil
}
