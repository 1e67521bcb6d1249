// Package predictor holds the diabetes feature vector, the input parsers that
// build it from form or JSON requests, and the decision rule applied to it.
package predictor

import "fmt"

// FeatureCount is the number of measurements a Vector carries.
const FeatureCount = 8

// The order is significant: vectors, forms and payloads all follow it.
var featureNames = [FeatureCount]string{
	"Pregnancies",
	"Glucose",
	"BloodPressure",
	"SkinThickness",
	"Insulin",
	"BMI",
	"DiabetesPedigreeFunction",
	"Age",
}

const glucoseIndex = 1

// FeatureNames returns a copy of the feature names in vector order.
func FeatureNames() []string {
	names := make([]string, FeatureCount)
	copy(names, featureNames[:])
	return names
}

// Vector is an ordered set of the eight measurements.
type Vector [FeatureCount]float64

// Glucose is the measurement the decision rule looks at.
func (v Vector) Glucose() float64 {
	return v[glucoseIndex]
}

// Map keys every value by its feature name, the shape the JSON endpoint accepts.
func (v Vector) Map() map[string]float64 {
	m := make(map[string]float64, FeatureCount)
	for i, n := range featureNames {
		m[n] = v[i]
	}
	return m
}

// FromMap builds a vector from named values. The first feature missing in
// vector order is reported.
func FromMap(values map[string]float64) (Vector, error) {
	var v Vector
	for i, name := range featureNames {
		f, ok := values[name]
		if !ok {
			return Vector{}, &InputError{Field: name, Err: ErrMissingField}
		}
		v[i] = f
	}
	return v, nil
}

func (v Vector) String() string {
	return fmt.Sprintf("%v", v.Map())
}
