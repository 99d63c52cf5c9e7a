package models

// Prediction is the transient result of a single classifier call.
type Prediction struct {
	// Label is the predicted class: 0 = absence, 1 = presence of disease.
	Label int

	// Score is the model's raw risk score in [0, 1] behind the label.
	Score float64
}

// FieldError describes a single invalid prediction form field.
type FieldError struct {
	// Field is the form field name as submitted (e.g. "trestbps").
	Field string

	// Reason is a short human-readable description of what is wrong.
	Reason string
}

// ValidationResult aggregates every invalid field of one prediction request,
// so the user sees all problems at once instead of the first one.
type ValidationResult struct {
	Fields []FieldError
}

// Add appends one field error to the result.
func (v *ValidationResult) Add(field, reason string) {
	v.Fields = append(v.Fields, FieldError{Field: field, Reason: reason})
}

// OK reports whether the request passed validation.
func (v *ValidationResult) OK() bool {
	return len(v.Fields) == 0
}
