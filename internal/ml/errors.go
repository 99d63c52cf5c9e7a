package ml

import "errors"

var (
	// ErrMalformedArtifact is returned by Load when the artifact's declared
	// shapes disagree (e.g. weight count differs from feature count).
	ErrMalformedArtifact = errors.New("malformed model artifact")

	// ErrBadVectorLength is returned by Predict when the supplied vector
	// does not match the artifact's feature count.
	ErrBadVectorLength = errors.New("feature vector length mismatch")
)
