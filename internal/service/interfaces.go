package service

import (
	"context"
	"net/url"

	"github.com/JahangirOsman/hdp-webapp/models"
)

// AuthService implements the registration and login flows against the
// credential store. No session or token is issued on success: a successful
// login is a single-response acknowledgment only.
type AuthService interface {
	// RegisterUser hashes the raw password and persists a new user record.
	// Returns store.ErrEmailAlreadyExists (wrapped) when the email is taken
	// and ErrInvalidDataProvided when a required field is empty.
	RegisterUser(ctx context.Context, username, email, password string) (models.User, error)

	// Login verifies email/password against the stored one-way hash.
	// The three outcomes are mutually exclusive and exhaustive:
	// store.ErrNoUserWasFound (wrapped), ErrWrongPassword, or success.
	Login(ctx context.Context, email, password string) (models.User, error)
}

// PredictionService validates one submitted prediction form against the
// feature schema and runs the classifier over the assembled vector.
type PredictionService interface {
	// Predict coerces and range-checks the 13 named form fields, then calls
	// the model. Invalid input yields a *ValidationError enumerating every
	// bad field; it never aborts on the first one.
	Predict(ctx context.Context, form url.Values) (models.Prediction, error)
}

// ChartService renders the dataset's aggregate views as embeddable chart
// fragments.
type ChartService interface {
	// BuildCharts recomputes the four chart fragments from the in-memory
	// dataset. Deterministic: the dataset never changes within the process
	// lifetime, so repeated calls yield identical output.
	BuildCharts() []ChartFragment
}

// Classifier is the prediction contract of the loaded model artifact.
type Classifier interface {
	Predict(vector []float64) (models.Prediction, error)
}
