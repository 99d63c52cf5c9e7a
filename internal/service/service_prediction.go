package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"

	"github.com/JahangirOsman/hdp-webapp/internal/logger"
	"github.com/JahangirOsman/hdp-webapp/models"
	"github.com/go-playground/validator/v10"
)

// predictionService is the concrete implementation of PredictionService.
// It owns the feature schema: field presence and type coercion are checked
// during parsing, value ranges via the validate tags on
// [models.PatientFeatures].
type predictionService struct {
	classifier Classifier
	validate   *validator.Validate
	logger     *logger.Logger
}

// NewPredictionService constructs a PredictionService over the loaded
// classifier.
//
// The validator reports fields under their form names (the `form` tag), so
// validation messages line up with what the user actually submitted.
func NewPredictionService(classifier Classifier, logger *logger.Logger) PredictionService {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("form")
	})

	return &predictionService{
		classifier: classifier,
		validate:   validate,
		logger:     logger,
	}
}

// Predict parses the 13 named form fields into a feature vector and calls
// the model.
//
// All schema violations are collected before returning: a request with three
// bad fields yields a single *ValidationError listing all three. Only a
// fully valid request reaches the classifier.
func (p *predictionService) Predict(ctx context.Context, form url.Values) (models.Prediction, error) {
	log := logger.FromContext(ctx)

	features, result := p.parseFeatures(form)

	if result.OK() {
		if err := p.validate.Struct(features); err != nil {
			var fieldErrs validator.ValidationErrors
			if !errors.As(err, &fieldErrs) {
				return models.Prediction{}, fmt.Errorf("feature validation failed: %w", err)
			}
			for _, fe := range fieldErrs {
				result.Add(fe.Field(), rangeReason(fe))
			}
		}
	}

	if !result.OK() {
		log.Debug().Int("invalid_fields", len(result.Fields)).Msg("prediction input rejected")
		return models.Prediction{}, &ValidationError{Fields: result.Fields}
	}

	prediction, err := p.classifier.Predict(features.Vector())
	if err != nil {
		log.Err(err).Msg("classifier call failed")
		return models.Prediction{}, fmt.Errorf("classifier call failed: %w", err)
	}

	return prediction, nil
}

// parseFeatures coerces each form field per its declared type, collecting an
// error per missing or non-numeric field instead of stopping at the first.
func (p *predictionService) parseFeatures(form url.Values) (models.PatientFeatures, *models.ValidationResult) {
	var features models.PatientFeatures
	result := &models.ValidationResult{}

	intField := func(name string, dst *int) {
		raw := form.Get(name)
		if raw == "" {
			result.Add(name, "is required")
			return
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			result.Add(name, "must be an integer")
			return
		}
		*dst = v
	}

	floatField := func(name string, dst *float64) {
		raw := form.Get(name)
		if raw == "" {
			result.Add(name, "is required")
			return
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			result.Add(name, "must be a number")
			return
		}
		*dst = v
	}

	intField("age", &features.Age)
	intField("sex", &features.Sex)
	intField("cp", &features.ChestPainType)
	intField("trestbps", &features.RestingBP)
	intField("chol", &features.Cholesterol)
	intField("fbs", &features.FastingBS)
	intField("restecg", &features.RestingECG)
	intField("thalach", &features.MaxHeartRate)
	intField("exang", &features.ExerciseAngina)
	floatField("oldpeak", &features.OldPeak)
	intField("slope", &features.Slope)
	intField("ca", &features.MajorVessels)
	intField("thal", &features.Thalassemia)

	return features, result
}

// rangeReason renders one validator range violation as a user-facing reason.
func rangeReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return "is out of range"
	}
}
