// Package schema defines what each entity looks like on the wire: which fields a
// request may carry, how their values are coerced, and which fields a response
// exposes.
package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/user/movies-api-go/internal/model"
)

// Kind is the wire type of a field
type Kind int

const (
	String Kind = iota
	Int
	Float
	// Ref is a foreign key id: a positive integer
	Ref
)

// Field describes one writable wire field
type Field struct {
	Name     string
	Kind     Kind
	Nullable bool
	// Required fields must be present and non-empty on create and replace
	Required bool
}

// Schema is the allowlist of writable and filterable fields of an entity
type Schema struct {
	Entity  string
	Fields  []Field
	Filters []string
}

// Movie is the wire schema of movies
var Movie = &Schema{
	Entity: "movie",
	Fields: []Field{
		{Name: model.ColTitle, Kind: String, Required: true},
		{Name: model.ColDescription, Kind: String, Nullable: true},
		{Name: model.ColTrailer, Kind: String, Nullable: true},
		{Name: model.ColYear, Kind: Int, Nullable: true},
		{Name: model.ColRating, Kind: Float, Nullable: true},
		{Name: model.ColGenreID, Kind: Ref, Nullable: true},
		{Name: model.ColDirectorID, Kind: Ref, Nullable: true},
	},
	Filters: []string{model.ColDirectorID, model.ColGenreID},
}

// Director is the wire schema of directors
var Director = &Schema{
	Entity: "director",
	Fields: []Field{
		{Name: model.ColName, Kind: String, Required: true},
	},
}

// Genre is the wire schema of genres
var Genre = &Schema{
	Entity: "genre",
	Fields: []Field{
		{Name: model.ColName, Kind: String, Required: true},
	},
}

func (s *Schema) field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Error is a request that could not be decoded into fields.
// FieldErrors maps wire field names to what is wrong with them.
type Error struct {
	Message     string
	FieldErrors map[string]string
}

func (e *Error) Error() string {
	if len(e.FieldErrors) == 0 {
		return e.Message
	}
	names := make([]string, 0, len(e.FieldErrors))
	for name := range e.FieldErrors {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.FieldErrors[name]))
	}
	return fmt.Sprintf("%s (%s)", e.Message, strings.Join(parts, "; "))
}
