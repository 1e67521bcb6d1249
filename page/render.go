// Package page renders the prediction form.
package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/saqibullah/diabetes-predictor/predictor"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed templates/form.html
var templates embed.FS

var formTemplate = template.Must(
	template.New("form.html").
		Funcs(template.FuncMap{"label": Label}).
		ParseFS(templates, "templates/form.html"),
)

type formData struct {
	Features []string
	Result   *predictor.Result
	Error    string
}

// Label turns a feature name into its form label: underscores become spaces
// and each word keeps only its first letter upper case ("BloodPressure" is
// shown as "Bloodpressure").
func Label(feature string) string {
	// Casers hold state, so one is made per call.
	return cases.Title(language.English).String(strings.ReplaceAll(feature, "_", " "))
}

// Render returns the page markup: one required numeric input per feature, plus
// a result block when result is set and an error block when err is set.
func Render(features []string, result *predictor.Result, err error) ([]byte, error) {
	data := formData{
		Features: features,
		Result:   result,
	}
	if err != nil {
		data.Error = err.Error()
	}

	var buf bytes.Buffer
	if execErr := formTemplate.Execute(&buf, data); execErr != nil {
		return nil, fmt.Errorf("execute form template: %w", execErr)
	}
	return buf.Bytes(), nil
}
