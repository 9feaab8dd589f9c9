package schema

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/user/movies-api-go/internal/model"
)

func TestDecodeCreate_Movie(t *testing.T) {
	body := `{"title":"Heat","year":"1995","rating":8.3,"director_id":2,"genre_id":null,"description":null}`

	fields, err := Movie.DecodeCreate([]byte(body))
	if err != nil {
		t.Fatalf("DecodeCreate() error = %v", err)
	}

	if fields[model.ColTitle] != "Heat" {
		t.Errorf("title = %v, want Heat", fields[model.ColTitle])
	}
	if fields[model.ColYear] != 1995 {
		t.Errorf("year = %#v, want 1995", fields[model.ColYear])
	}
	if fields[model.ColRating] != 8.3 {
		t.Errorf("rating = %#v, want 8.3", fields[model.ColRating])
	}
	if fields[model.ColDirectorID] != uint(2) {
		t.Errorf("director_id = %#v, want uint(2)", fields[model.ColDirectorID])
	}
	if v, ok := fields[model.ColGenreID]; !ok || v != nil {
		t.Errorf("genre_id = %#v (present %v), want explicit nil", v, ok)
	}
	if fields.Has(model.ColTrailer) {
		t.Error("trailer should be absent")
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name      string
		schema    *Schema
		decode    func(*Schema, []byte) (model.Fields, error)
		body      string
		wantField string
	}{
		{"create missing title", Movie, (*Schema).DecodeCreate, `{"year":2000}`, model.ColTitle},
		{"create empty name", Director, (*Schema).DecodeCreate, `{"name":""}`, model.ColName},
		{"patch empty title", Movie, (*Schema).DecodePatch, `{"title":""}`, model.ColTitle},
		{"replace empty name", Genre, (*Schema).DecodeReplace, `{"name":""}`, model.ColName},
		{"null title", Movie, (*Schema).DecodePatch, `{"title":null}`, model.ColTitle},
		{"unknown field", Genre, (*Schema).DecodePatch, `{"name":"x","color":"red"}`, "color"},
		{"id is not writable", Director, (*Schema).DecodePatch, `{"id":5,"name":"x"}`, "id"},
		{"year not a number", Movie, (*Schema).DecodePatch, `{"year":"soon"}`, model.ColYear},
		{"year fractional", Movie, (*Schema).DecodePatch, `{"year":1999.5}`, model.ColYear},
		{"rating bool", Movie, (*Schema).DecodePatch, `{"rating":true}`, model.ColRating},
		{"rating NaN string", Movie, (*Schema).DecodePatch, `{"rating":"NaN"}`, model.ColRating},
		{"ref zero", Movie, (*Schema).DecodePatch, `{"genre_id":0}`, model.ColGenreID},
		{"ref negative", Movie, (*Schema).DecodePatch, `{"director_id":-3}`, model.ColDirectorID},
		{"title not a string", Movie, (*Schema).DecodePatch, `{"title":42}`, model.ColTitle},
		{"replace missing field", Movie, (*Schema).DecodeReplace, `{"title":"x"}`, model.ColYear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.decode(tt.schema, []byte(tt.body))
			var serr *Error
			if !errors.As(err, &serr) {
				t.Fatalf("error = %v, want *Error", err)
			}
			if _, ok := serr.FieldErrors[tt.wantField]; !ok {
				t.Errorf("FieldErrors = %v, want an entry for %q", serr.FieldErrors, tt.wantField)
			}
		})
	}
}

func TestDecode_NotAnObject(t *testing.T) {
	for _, body := range []string{
		"", "   ", "null", "[1,2]", `"title"`, `{"title":`,
		`{"title":"Heat"} not json at all`,
		`{"title":"A"}{"title":"B"}`,
		`{"title":"A"} 42`,
	} {
		t.Run(fmt.Sprintf("%q", body), func(t *testing.T) {
			_, err := Movie.DecodePatch([]byte(body))
			var serr *Error
			if !errors.As(err, &serr) {
				t.Fatalf("error = %v, want *Error", err)
			}
			if len(serr.FieldErrors) != 0 {
				t.Errorf("FieldErrors = %v, want none", serr.FieldErrors)
			}
		})
	}
}

func TestDecode_BlankNameIsNotEmpty(t *testing.T) {
	fields, err := Director.DecodeCreate([]byte(`{"name":" "}`))
	if err != nil {
		t.Fatalf("DecodeCreate() error = %v", err)
	}
	if fields[model.ColName] != " " {
		t.Errorf("name = %#v, want a single space", fields[model.ColName])
	}
}

func TestDecode_TrailingWhitespace(t *testing.T) {
	fields, err := Director.DecodeCreate([]byte("{\"name\":\"Nolan\"}\n\t "))
	if err != nil {
		t.Fatalf("DecodeCreate() error = %v", err)
	}
	if fields[model.ColName] != "Nolan" {
		t.Errorf("name = %v, want Nolan", fields[model.ColName])
	}
}

func TestDecodeReplace_AllowsNulls(t *testing.T) {
	body := `{"title":"Alien","description":null,"trailer":null,"year":null,"rating":null,"genre_id":null,"director_id":null}`
	fields, err := Movie.DecodeReplace([]byte(body))
	if err != nil {
		t.Fatalf("DecodeReplace() error = %v", err)
	}
	if len(fields) != len(model.MovieColumns) {
		t.Errorf("len(fields) = %d, want %d", len(fields), len(model.MovieColumns))
	}
}

func TestDecodePatch_Empty(t *testing.T) {
	fields, err := Movie.DecodePatch([]byte(`{}`))
	if err != nil {
		t.Fatalf("DecodePatch() error = %v", err)
	}
	if len(fields) != 0 {
		t.Errorf("fields = %v, want empty", fields)
	}
}

func TestDecodeFilter(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    model.Fields
		wantErr bool
	}{
		{"no filter", "", model.Fields{}, false},
		{"director", "director_id=3", model.Fields{model.ColDirectorID: uint(3)}, false},
		{"both", "director_id=3&genre_id=7", model.Fields{model.ColDirectorID: uint(3), model.ColGenreID: uint(7)}, false},
		{"non-filter params ignored", "title=x&page=2", model.Fields{}, false},
		{"not an integer", "genre_id=abc", nil, true},
		{"empty value", "genre_id=", nil, true},
		{"zero", "director_id=0", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, _ := url.ParseQuery(tt.query)
			got, err := Movie.DecodeFilter(q)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeFilter() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("DecodeFilter() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("%s = %#v, want %#v", k, got[k], v)
				}
			}
		})
	}
}

func TestError_Message(t *testing.T) {
	err := &Error{Message: "movie validation failed", FieldErrors: map[string]string{
		"year":  "must be an integer",
		"title": "is required",
	}}
	want := "movie validation failed (title: is required; year: must be an integer)"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

// Property: Integer Coercion
// An integer field decodes to the same value whether sent as a JSON number or a numeric string.
func TestProperty_IntegerCoercion(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("year decodes identically from number and string", prop.ForAll(
		func(year int) bool {
			fromNumber, err := Movie.DecodePatch([]byte(fmt.Sprintf(`{"year":%d}`, year)))
			if err != nil {
				return false
			}
			fromString, err := Movie.DecodePatch([]byte(fmt.Sprintf(`{"year":"%s"}`, strconv.Itoa(year))))
			if err != nil {
				return false
			}
			return fromNumber[model.ColYear] == year && fromString[model.ColYear] == year
		},
		gen.IntRange(-5000, 5000),
	))

	properties.Property("positive refs decode to uint, others are rejected", prop.ForAll(
		func(id int) bool {
			fields, err := Movie.DecodePatch([]byte(fmt.Sprintf(`{"genre_id":%d}`, id)))
			if id < 1 {
				return err != nil
			}
			return err == nil && fields[model.ColGenreID] == uint(id)
		},
		gen.IntRange(-100, 100000),
	))

	properties.TestingRun(t)
}
