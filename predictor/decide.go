package predictor

import "math"

const (
	// GlucoseThreshold is exclusive: a reading of exactly 120 is not diabetic.
	GlucoseThreshold = 120.0

	positiveProbability = 0.75
	negativeProbability = 0.25

	MeaningDiabetic    = "Diabetic"
	MeaningNotDiabetic = "Not Diabetic"
)

// Result is the outcome of one prediction.
type Result struct {
	Probability float64 `json:"probability"`
	Prediction  int     `json:"prediction"` // 1 = diabetic, 0 = non-diabetic
	Meaning     string  `json:"meaning"`
}

// Predictor turns a feature vector into a Result.
type Predictor interface {
	Predict(v Vector) Result
}

// GlucoseRule is a placeholder predictor: no model is trained or loaded, the
// outcome depends on the glucose reading alone.
type GlucoseRule struct{}

func (GlucoseRule) Predict(v Vector) Result {
	return Decide(v)
}

// Decide applies the glucose threshold rule.
func Decide(v Vector) Result {
	if v.Glucose() > GlucoseThreshold {
		return Result{
			Probability: round3(positiveProbability),
			Prediction:  1,
			Meaning:     MeaningDiabetic,
		}
	}
	return Result{
		Probability: round3(negativeProbability),
		Prediction:  0,
		Meaning:     MeaningNotDiabetic,
	}
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
