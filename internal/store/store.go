package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/user/movies-api-go/internal/config"
	"github.com/user/movies-api-go/internal/model"
)

var (
	// ErrNotFound is returned when an id does not resolve to a record
	ErrNotFound = errors.New("record not found")
	// ErrReferenceNotFound is returned when a movie points at a director or genre that does not exist
	ErrReferenceNotFound = errors.New("referenced record not found")
	// ErrReferenced is returned when deleting a director or genre still used by movies under RejectReferenced
	ErrReferenced = errors.New("record is referenced by movies")
)

// ReferencePolicy decides how deleting a director or genre treats the movies pointing at it
type ReferencePolicy int

const (
	// NullifyReferences clears the movies' foreign key and deletes the record
	NullifyReferences ReferencePolicy = iota
	// RejectReferenced refuses the delete while any movie points at the record
	RejectReferenced
)

// ParseReferencePolicy maps the DB_ON_DELETE setting to a policy
func ParseReferencePolicy(s string) (ReferencePolicy, error) {
	switch s {
	case config.OnDeleteNullify, "":
		return NullifyReferences, nil
	case config.OnDeleteReject:
		return RejectReferenced, nil
	default:
		return 0, fmt.Errorf("unknown on-delete policy %q", s)
	}
}

// Store defines the interface for data persistence operations.
// Filters are equality constraints combined with AND; lists are ordered by id.
type Store interface {
	// Movie operations
	ListMovies(ctx context.Context, filter model.Fields) ([]*model.Movie, error)
	GetMovie(ctx context.Context, id uint) (*model.Movie, error)
	CreateMovie(ctx context.Context, fields model.Fields) (*model.Movie, error)
	UpdateMovie(ctx context.Context, id uint, fields model.Fields) (*model.Movie, error)
	PatchMovie(ctx context.Context, id uint, fields model.Fields) (*model.Movie, error)
	DeleteMovie(ctx context.Context, id uint) error

	// Director operations
	ListDirectors(ctx context.Context) ([]*model.Director, error)
	GetDirector(ctx context.Context, id uint) (*model.Director, error)
	CreateDirector(ctx context.Context, fields model.Fields) (*model.Director, error)
	UpdateDirector(ctx context.Context, id uint, fields model.Fields) (*model.Director, error)
	PatchDirector(ctx context.Context, id uint, fields model.Fields) (*model.Director, error)
	DeleteDirector(ctx context.Context, id uint) error

	// Genre operations
	ListGenres(ctx context.Context) ([]*model.Genre, error)
	GetGenre(ctx context.Context, id uint) (*model.Genre, error)
	CreateGenre(ctx context.Context, fields model.Fields) (*model.Genre, error)
	UpdateGenre(ctx context.Context, id uint, fields model.Fields) (*model.Genre, error)
	PatchGenre(ctx context.Context, id uint, fields model.Fields) (*model.Genre, error)
	DeleteGenre(ctx context.Context, id uint) error

	// Health check
	Ping(ctx context.Context) error
	Close() error
}

// fullFields returns fields with every column in columns present; missing ones become zero.
// zero maps a column to the value it takes when omitted from a full update.
func fullFields(columns []string, fields model.Fields, zero func(col string) any) model.Fields {
	out := make(model.Fields, len(columns))
	for _, col := range columns {
		out[col] = zero(col)
	}
	for col, v := range fields {
		out[col] = v
	}
	return out
}

func movieZero(col string) any {
	if col == model.ColTitle {
		return ""
	}
	return nil
}

func namedZero(string) any {
	return ""
}
