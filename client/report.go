package client

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/saqibullah/diabetes-predictor/predictor"
)

// Common spellings in lab reports, rewritten before matching.
var reportReplacer = strings.NewReplacer(
	"BloodPressure", "Blood Pressure",
	"SkinThickness", "Skin Thickness",
	"DPF", "Diabetes Pedigree Function",
)

var reportPatterns = []struct {
	feature string
	re      *regexp.Regexp
}{
	{"Pregnancies", regexp.MustCompile(`(?i)\bPregnancies\s*[:=\-]?\s*(\d+)`)},
	{"Glucose", regexp.MustCompile(`(?i)\bGlucose\s*[:=\-]?\s*(\d+\.?\d*)`)},
	{"BloodPressure", regexp.MustCompile(`(?i)\bBlood\s*Pressure\s*[:=\-]?\s*(\d+\.?\d*)`)},
	{"SkinThickness", regexp.MustCompile(`(?i)\bSkin\s*Thickness\s*[:=\-]?\s*(\d+\.?\d*)`)},
	{"Insulin", regexp.MustCompile(`(?i)\bInsulin\s*[:=\-]?\s*(\d+\.?\d*)`)},
	{"BMI", regexp.MustCompile(`(?i)\bBMI\s*[:=\-]?\s*(\d+\.?\d*)`)},
	{"DiabetesPedigreeFunction", regexp.MustCompile(`(?i)\bDiabetes\s*Pedigree\s*Function\s*[:=\-]?\s*(\d+\.?\d*)`)},
	{"Age", regexp.MustCompile(`(?i)\bAge\s*[:=\-]?\s*(\d+)`)},
}

// ParseReport pulls whatever feature values it can find out of free-form
// lab report text. Features that are not found are left out of the map.
func ParseReport(text string) map[string]float64 {
	text = reportReplacer.Replace(strings.TrimSpace(text))

	extracted := make(map[string]float64, len(reportPatterns))
	for _, p := range reportPatterns {
		match := p.re.FindStringSubmatch(text)
		if len(match) < 2 {
			continue
		}
		if f, err := strconv.ParseFloat(match[1], 64); err == nil {
			extracted[p.feature] = f
		}
	}
	return extracted
}

// VectorFromReport parses a report and requires every feature to be present.
func VectorFromReport(text string) (predictor.Vector, error) {
	return predictor.FromMap(ParseReport(text))
}
