package models

// PatientFeatures is the fixed-order tuple of 13 clinical measurements fed
// to the classifier. Instances are constructed per prediction request and
// never persisted.
//
// The `form` tag names match the HTML form fields one-to-one; the
// `validate` tags define the accepted domain of each field.
type PatientFeatures struct {
	// Age in years.
	Age int `form:"age" validate:"gte=1,lte=120"`

	// Sex: 0 = female, 1 = male.
	Sex int `form:"sex" validate:"gte=0,lte=1"`

	// ChestPainType: chest pain type code (0-3).
	ChestPainType int `form:"cp" validate:"gte=0,lte=3"`

	// RestingBP: resting blood pressure in mm Hg.
	RestingBP int `form:"trestbps" validate:"gte=50,lte=300"`

	// Cholesterol: serum cholesterol in mg/dl.
	Cholesterol int `form:"chol" validate:"gte=50,lte=700"`

	// FastingBS: fasting blood sugar > 120 mg/dl flag (0 or 1).
	FastingBS int `form:"fbs" validate:"gte=0,lte=1"`

	// RestingECG: resting electrocardiographic result code (0-2).
	RestingECG int `form:"restecg" validate:"gte=0,lte=2"`

	// MaxHeartRate: maximum heart rate achieved.
	MaxHeartRate int `form:"thalach" validate:"gte=40,lte=250"`

	// ExerciseAngina: exercise-induced angina flag (0 or 1).
	ExerciseAngina int `form:"exang" validate:"gte=0,lte=1"`

	// OldPeak: ST depression induced by exercise relative to rest.
	OldPeak float64 `form:"oldpeak" validate:"gte=0,lte=10"`

	// Slope: slope of the peak exercise ST segment (0-2).
	Slope int `form:"slope" validate:"gte=0,lte=2"`

	// MajorVessels: number of major vessels colored by fluoroscopy (0-4).
	MajorVessels int `form:"ca" validate:"gte=0,lte=4"`

	// Thalassemia: thalassemia code (0-3).
	Thalassemia int `form:"thal" validate:"gte=0,lte=3"`
}

// Vector returns the features as an ordered slice in the exact column order
// the model artifact was trained on.
func (p PatientFeatures) Vector() []float64 {
	return []float64{
		float64(p.Age),
		float64(p.Sex),
		float64(p.ChestPainType),
		float64(p.RestingBP),
		float64(p.Cholesterol),
		float64(p.FastingBS),
		float64(p.RestingECG),
		float64(p.MaxHeartRate),
		float64(p.ExerciseAngina),
		p.OldPeak,
		float64(p.Slope),
		float64(p.MajorVessels),
		float64(p.Thalassemia),
	}
}

// FeatureNames lists the form field names in model column order.
func FeatureNames() []string {
	return []string{
		"age", "sex", "cp", "trestbps", "chol", "fbs", "restecg",
		"thalach", "exang", "oldpeak", "slope", "ca", "thal",
	}
}
