package predictor

import "testing"

func vectorWithGlucose(g float64) Vector {
	return Vector{2, g, 70, 20, 80, 25.5, 0.5, 33}
}

func TestDecide(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		glucose  float64
		expected Result
	}{
		{
			name:     "above_threshold",
			glucose:  148,
			expected: Result{Probability: 0.75, Prediction: 1, Meaning: MeaningDiabetic},
		},
		{
			name:     "just_above_threshold",
			glucose:  120.0001,
			expected: Result{Probability: 0.75, Prediction: 1, Meaning: MeaningDiabetic},
		},
		{
			name:     "exactly_threshold",
			glucose:  120,
			expected: Result{Probability: 0.25, Prediction: 0, Meaning: MeaningNotDiabetic},
		},
		{
			name:     "below_threshold",
			glucose:  85,
			expected: Result{Probability: 0.25, Prediction: 0, Meaning: MeaningNotDiabetic},
		},
		{
			name:     "negative_reading",
			glucose:  -5,
			expected: Result{Probability: 0.25, Prediction: 0, Meaning: MeaningNotDiabetic},
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got := Decide(vectorWithGlucose(test.glucose))
			if got != test.expected {
				t.Errorf("Decide got: %+v, expected: %+v", got, test.expected)
			}
		})
	}
}

func TestDecide_OnlyGlucoseMatters(t *testing.T) {
	t.Parallel()
	low := Vector{17, 100, 200, 99, 800, 60, 2.4, 81}
	if got := Decide(low); got.Prediction != 0 {
		t.Errorf("Decide got prediction: %d, expected: 0", got.Prediction)
	}
	high := Vector{0, 121, 0, 0, 0, 0, 0, 0}
	if got := Decide(high); got.Prediction != 1 {
		t.Errorf("Decide got prediction: %d, expected: 1", got.Prediction)
	}
}

func TestGlucoseRule_Idempotent(t *testing.T) {
	t.Parallel()
	var p Predictor = GlucoseRule{}
	v := vectorWithGlucose(130)
	first := p.Predict(v)
	for i := 0; i < 10; i++ {
		if got := p.Predict(v); got != first {
			t.Fatalf("Predict call %d got: %+v, expected: %+v", i, got, first)
		}
	}
}

func TestRound3(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in       float64
		expected float64
	}{
		{in: 0.75, expected: 0.75},
		{in: 0.12345, expected: 0.123},
		{in: 0.9996, expected: 1},
	}
	for _, test := range tests {
		if got := round3(test.in); got != test.expected {
			t.Errorf("round3(%v) got: %v, expected: %v", test.in, got, test.expected)
		}
	}
}
