package predictor

import (
	"encoding/json"
	"fmt"
	"mime"
	"strconv"
	"strings"
)

// Mode is the request shape, decided once from the content type.
type Mode int

const (
	ModeForm Mode = iota
	ModeJSON
)

func (m Mode) String() string {
	if m == ModeJSON {
		return "json"
	}
	return "form"
}

// ModeFor picks JSON mode for application/json and application/*+json media
// types and form mode for everything else.
func ModeFor(contentType string) Mode {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	}
	if mediaType == "application/json" {
		return ModeJSON
	}
	if strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json") {
		return ModeJSON
	}
	return ModeForm
}

// LookupFunc returns the raw value submitted for a field and whether it was present.
type LookupFunc func(name string) (string, bool)

// ParseForm reads every feature through lookup and converts it to float64.
func ParseForm(lookup LookupFunc) (Vector, error) {
	var v Vector
	for i, name := range featureNames {
		raw, ok := lookup(name)
		if !ok {
			return Vector{}, &InputError{Field: name, Err: ErrMissingField}
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return Vector{}, &InputError{
				Field: name,
				Err:   fmt.Errorf("could not convert string to float: '%s'", raw),
			}
		}
		v[i] = f
	}
	return v, nil
}

// ParseJSON decodes a JSON object keyed by feature name. Keys are matched
// exactly and every value must be a JSON number.
func ParseJSON(body []byte) (Vector, error) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return Vector{}, &InputError{Err: err}
	}
	if payload == nil {
		return Vector{}, &InputError{Err: fmt.Errorf("expected a JSON object, got null")}
	}

	var v Vector
	for i, name := range featureNames {
		raw, ok := payload[name]
		if !ok {
			return Vector{}, &InputError{Field: name, Err: ErrMissingField}
		}
		var value interface{}
		if err := json.Unmarshal(raw, &value); err != nil {
			return Vector{}, &InputError{Field: name, Err: err}
		}
		f, ok := value.(float64)
		if !ok {
			return Vector{}, &InputError{Field: name, Err: fmt.Errorf("expected a number, got %s", raw)}
		}
		v[i] = f
	}
	return v, nil
}
