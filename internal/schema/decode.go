package schema

import (
	"bytes"
	"errors"
	"io"
	"math"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/user/movies-api-go/internal/model"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

type mode int

const (
	modeCreate mode = iota
	modeReplace
	modePatch
)

// DecodeCreate decodes a create request; required fields must be present
func (s *Schema) DecodeCreate(body []byte) (model.Fields, error) {
	return s.decode(body, modeCreate)
}

// DecodeReplace decodes a full update; every field must be present, nullable ones may be null
func (s *Schema) DecodeReplace(body []byte) (model.Fields, error) {
	return s.decode(body, modeReplace)
}

// DecodePatch decodes a partial update; any subset of fields is accepted
func (s *Schema) DecodePatch(body []byte) (model.Fields, error) {
	return s.decode(body, modePatch)
}

// DecodeFilter reads the schema's filterable query parameters.
// Parameters that are not filters are ignored.
func (s *Schema) DecodeFilter(query url.Values) (model.Fields, error) {
	fields := model.Fields{}
	errs := map[string]string{}
	for _, name := range s.Filters {
		if !query.Has(name) {
			continue
		}
		f, _ := s.field(name)
		v, msg := coerce(f, query.Get(name))
		if msg != "" {
			errs[name] = msg
			continue
		}
		fields[name] = v
	}
	if len(errs) > 0 {
		return nil, &Error{Message: "invalid filter", FieldErrors: errs}
	}
	return fields, nil
}

func (s *Schema) decode(body []byte, m mode) (model.Fields, error) {
	raw, err := decodeObject(body)
	if err != nil {
		return nil, err
	}

	fields := make(model.Fields, len(raw))
	errs := map[string]string{}
	for name, v := range raw {
		if name == "id" {
			errs[name] = "is assigned by the server"
			continue
		}
		f, ok := s.field(name)
		if !ok {
			errs[name] = "unknown field"
			continue
		}
		val, msg := coerce(f, v)
		if msg != "" {
			errs[name] = msg
			continue
		}
		fields[name] = val
	}

	rules := map[string]any{}
	for _, f := range s.Fields {
		_, present := raw[f.Name]
		switch {
		case !present && (m == modeReplace || (m == modeCreate && f.Required)):
			errs[f.Name] = "is required"
		// required also rejects the empty string
		case fields.Has(f.Name) && f.Required:
			rules[f.Name] = "required"
		}
	}
	for name, verr := range getValidator().ValidateMap(fields, rules) {
		errs[name] = ruleMessage(verr)
	}

	if len(errs) > 0 {
		return nil, &Error{Message: s.Entity + " validation failed", FieldErrors: errs}
	}
	return fields, nil
}

func decodeObject(body []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, &Error{Message: "request body must be a JSON object"}
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, &Error{Message: "malformed JSON: " + err.Error()}
	}
	if raw == nil {
		return nil, &Error{Message: "request body must be a JSON object"}
	}
	// Exactly one value: anything but whitespace after the object is malformed
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, &Error{Message: "malformed JSON: trailing data after object"}
	}
	return raw, nil
}

func ruleMessage(err any) string {
	var verrs validator.ValidationErrors
	if e, ok := err.(error); ok && errors.As(e, &verrs) && len(verrs) > 0 && verrs[0].Tag() == "required" {
		return "must not be empty"
	}
	return "is invalid"
}

// coerce converts a decoded JSON value (or a query string) to the Go type the model expects.
// The returned message is empty on success.
func coerce(f Field, v any) (any, string) {
	if v == nil {
		if f.Nullable {
			return nil, ""
		}
		return nil, "must not be null"
	}

	switch f.Kind {
	case String:
		s, ok := v.(string)
		if !ok {
			return nil, "must be a string"
		}
		return s, ""

	case Int:
		n, ok := parseInt(v)
		if !ok {
			return nil, "must be an integer"
		}
		return n, ""

	case Float:
		x, ok := parseFloat(v)
		if !ok {
			return nil, "must be a number"
		}
		return x, ""

	case Ref:
		n, ok := parseInt(v)
		if !ok || n < 1 {
			return nil, "must be a positive integer id"
		}
		return uint(n), ""
	}
	return nil, "has an unsupported type"
}

func parseInt(v any) (int, bool) {
	var s string
	switch t := v.(type) {
	case json.Number:
		s = t.String()
	case string:
		s = strings.TrimSpace(t)
	default:
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, strconv.IntSize)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

func parseFloat(v any) (float64, bool) {
	var s string
	switch t := v.(type) {
	case json.Number:
		s = t.String()
	case string:
		s = strings.TrimSpace(t)
	default:
		return 0, false
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, false
	}
	return x, true
}
