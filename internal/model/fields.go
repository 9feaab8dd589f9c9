package model

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownField is returned when a field map names a column the entity does not have
	ErrUnknownField = errors.New("unknown field")
	// ErrInvalidValue is returned when a field map holds a value of the wrong Go type
	ErrInvalidValue = errors.New("invalid field value")
)

// Fields maps column names to already-coerced values.
// A nil value stands for SQL NULL.
type Fields map[string]any

// Has reports whether the column is present in the map
func (f Fields) Has(column string) bool {
	_, ok := f[column]
	return ok
}

func unknownField(entity, column string) error {
	return fmt.Errorf("%w: %s.%s", ErrUnknownField, entity, column)
}

func invalidValue(entity, column string, v any) error {
	return fmt.Errorf("%w: %s.%s has type %T", ErrInvalidValue, entity, column, v)
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asOptString(v any) (*string, bool) {
	if v == nil {
		return nil, true
	}
	s, ok := v.(string)
	if !ok {
		return nil, false
	}
	return &s, true
}

func asOptInt(v any) (*int, bool) {
	if v == nil {
		return nil, true
	}
	n, ok := v.(int)
	if !ok {
		return nil, false
	}
	return &n, true
}

func asOptFloat(v any) (*float64, bool) {
	switch n := v.(type) {
	case nil:
		return nil, true
	case float64:
		return &n, true
	case int:
		f := float64(n)
		return &f, true
	default:
		return nil, false
	}
}

func asOptRef(v any) (*uint, bool) {
	if v == nil {
		return nil, true
	}
	id, ok := v.(uint)
	if !ok {
		return nil, false
	}
	return &id, true
}
