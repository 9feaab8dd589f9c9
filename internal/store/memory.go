package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/user/movies-api-go/internal/model"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps the catalog in-process.
// Ids come from per-entity counters and are never reused after a delete.
type MemoryStore struct {
	mu     sync.RWMutex
	policy ReferencePolicy

	movies    map[uint]*model.Movie
	directors map[uint]*model.Director
	genres    map[uint]*model.Genre

	movieOrder    []uint
	directorOrder []uint
	genreOrder    []uint

	lastMovieID    uint
	lastDirectorID uint
	lastGenreID    uint
}

// NewMemoryStore initializes an empty in-memory store
func NewMemoryStore(policy ReferencePolicy) *MemoryStore {
	return &MemoryStore{
		policy:    policy,
		movies:    make(map[uint]*model.Movie),
		directors: make(map[uint]*model.Director),
		genres:    make(map[uint]*model.Genre),
	}
}

// ListMovies returns movies matching every filter column in insertion order
func (m *MemoryStore) ListMovies(ctx context.Context, filter model.Fields) ([]*model.Movie, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make([]*model.Movie, 0, len(m.movieOrder))
	for _, id := range m.movieOrder {
		movie := m.movies[id]
		ok, err := movie.Matches(filter)
		if err != nil {
			return nil, err
		}
		if ok {
			c := *movie
			res = append(res, &c)
		}
	}
	return res, nil
}

// GetMovie retrieves a movie by id
func (m *MemoryStore) GetMovie(ctx context.Context, id uint) (*model.Movie, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	movie, ok := m.movies[id]
	if !ok {
		return nil, fmt.Errorf("movie %d: %w", id, ErrNotFound)
	}
	c := *movie
	return &c, nil
}

// CreateMovie inserts a movie after checking that its director and genre exist
func (m *MemoryStore) CreateMovie(ctx context.Context, fields model.Fields) (*model.Movie, error) {
	movie := &model.Movie{}
	if err := movie.Apply(fields); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkMovieRefs(movie); err != nil {
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}

	m.lastMovieID++
	movie.ID = m.lastMovieID
	movie.CreatedAt = time.Now()
	movie.UpdatedAt = movie.CreatedAt
	m.movies[movie.ID] = movie
	m.movieOrder = append(m.movieOrder, movie.ID)

	c := *movie
	return &c, nil
}

// UpdateMovie replaces every mutable column of a movie
func (m *MemoryStore) UpdateMovie(ctx context.Context, id uint, fields model.Fields) (*model.Movie, error) {
	return m.writeMovie(id, fullFields(model.MovieColumns, fields, movieZero))
}

// PatchMovie writes only the given columns of a movie
func (m *MemoryStore) PatchMovie(ctx context.Context, id uint, fields model.Fields) (*model.Movie, error) {
	return m.writeMovie(id, fields)
}

func (m *MemoryStore) writeMovie(id uint, fields model.Fields) (*model.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.movies[id]
	if !ok {
		return nil, fmt.Errorf("movie %d: %w", id, ErrNotFound)
	}

	// Work on a copy so a rejected write leaves the stored movie untouched
	next := *current
	if err := next.Apply(fields); err != nil {
		return nil, err
	}
	if err := m.checkMovieRefs(&next); err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		next.UpdatedAt = time.Now()
	}
	m.movies[id] = &next

	c := next
	return &c, nil
}

// DeleteMovie removes a movie
func (m *MemoryStore) DeleteMovie(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.movies[id]; !ok {
		return fmt.Errorf("movie %d: %w", id, ErrNotFound)
	}
	delete(m.movies, id)
	m.movieOrder = without(m.movieOrder, id)
	return nil
}

// ListDirectors returns directors in insertion order
func (m *MemoryStore) ListDirectors(ctx context.Context) ([]*model.Director, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make([]*model.Director, 0, len(m.directorOrder))
	for _, id := range m.directorOrder {
		c := *m.directors[id]
		res = append(res, &c)
	}
	return res, nil
}

// GetDirector retrieves a director by id
func (m *MemoryStore) GetDirector(ctx context.Context, id uint) (*model.Director, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	director, ok := m.directors[id]
	if !ok {
		return nil, fmt.Errorf("director %d: %w", id, ErrNotFound)
	}
	c := *director
	return &c, nil
}

// CreateDirector inserts a director
func (m *MemoryStore) CreateDirector(ctx context.Context, fields model.Fields) (*model.Director, error) {
	director := &model.Director{}
	if err := director.Apply(fields); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastDirectorID++
	director.ID = m.lastDirectorID
	director.CreatedAt = time.Now()
	director.UpdatedAt = director.CreatedAt
	m.directors[director.ID] = director
	m.directorOrder = append(m.directorOrder, director.ID)

	c := *director
	return &c, nil
}

// UpdateDirector replaces every mutable column of a director
func (m *MemoryStore) UpdateDirector(ctx context.Context, id uint, fields model.Fields) (*model.Director, error) {
	return m.writeDirector(id, fullFields(model.NamedColumns, fields, namedZero))
}

// PatchDirector writes only the given columns of a director
func (m *MemoryStore) PatchDirector(ctx context.Context, id uint, fields model.Fields) (*model.Director, error) {
	return m.writeDirector(id, fields)
}

func (m *MemoryStore) writeDirector(id uint, fields model.Fields) (*model.Director, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.directors[id]
	if !ok {
		return nil, fmt.Errorf("director %d: %w", id, ErrNotFound)
	}
	next := *current
	if err := next.Apply(fields); err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		next.UpdatedAt = time.Now()
	}
	m.directors[id] = &next

	c := next
	return &c, nil
}

// DeleteDirector removes a director, applying the reference policy to its movies
func (m *MemoryStore) DeleteDirector(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.directors[id]; !ok {
		return fmt.Errorf("director %d: %w", id, ErrNotFound)
	}
	if err := m.releaseReferences("director", id, func(mv *model.Movie) **uint { return &mv.DirectorID }); err != nil {
		return err
	}
	delete(m.directors, id)
	m.directorOrder = without(m.directorOrder, id)
	return nil
}

// ListGenres returns genres in insertion order
func (m *MemoryStore) ListGenres(ctx context.Context) ([]*model.Genre, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make([]*model.Genre, 0, len(m.genreOrder))
	for _, id := range m.genreOrder {
		c := *m.genres[id]
		res = append(res, &c)
	}
	return res, nil
}

// GetGenre retrieves a genre by id
func (m *MemoryStore) GetGenre(ctx context.Context, id uint) (*model.Genre, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	genre, ok := m.genres[id]
	if !ok {
		return nil, fmt.Errorf("genre %d: %w", id, ErrNotFound)
	}
	c := *genre
	return &c, nil
}

// CreateGenre inserts a genre
func (m *MemoryStore) CreateGenre(ctx context.Context, fields model.Fields) (*model.Genre, error) {
	genre := &model.Genre{}
	if err := genre.Apply(fields); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastGenreID++
	genre.ID = m.lastGenreID
	genre.CreatedAt = time.Now()
	genre.UpdatedAt = genre.CreatedAt
	m.genres[genre.ID] = genre
	m.genreOrder = append(m.genreOrder, genre.ID)

	c := *genre
	return &c, nil
}

// UpdateGenre replaces every mutable column of a genre
func (m *MemoryStore) UpdateGenre(ctx context.Context, id uint, fields model.Fields) (*model.Genre, error) {
	return m.writeGenre(id, fullFields(model.NamedColumns, fields, namedZero))
}

// PatchGenre writes only the given columns of a genre
func (m *MemoryStore) PatchGenre(ctx context.Context, id uint, fields model.Fields) (*model.Genre, error) {
	return m.writeGenre(id, fields)
}

func (m *MemoryStore) writeGenre(id uint, fields model.Fields) (*model.Genre, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.genres[id]
	if !ok {
		return nil, fmt.Errorf("genre %d: %w", id, ErrNotFound)
	}
	next := *current
	if err := next.Apply(fields); err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		next.UpdatedAt = time.Now()
	}
	m.genres[id] = &next

	c := next
	return &c, nil
}

// DeleteGenre removes a genre, applying the reference policy to its movies
func (m *MemoryStore) DeleteGenre(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.genres[id]; !ok {
		return fmt.Errorf("genre %d: %w", id, ErrNotFound)
	}
	if err := m.releaseReferences("genre", id, func(mv *model.Movie) **uint { return &mv.GenreID }); err != nil {
		return err
	}
	delete(m.genres, id)
	m.genreOrder = without(m.genreOrder, id)
	return nil
}

// Ping always succeeds for the in-memory store
func (m *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

// Close is a no-op for the in-memory store
func (m *MemoryStore) Close() error {
	return nil
}

// checkMovieRefs must be called with mu held
func (m *MemoryStore) checkMovieRefs(movie *model.Movie) error {
	if movie.DirectorID != nil {
		if _, ok := m.directors[*movie.DirectorID]; !ok {
			return fmt.Errorf("%s %d: %w", model.ColDirectorID, *movie.DirectorID, ErrReferenceNotFound)
		}
	}
	if movie.GenreID != nil {
		if _, ok := m.genres[*movie.GenreID]; !ok {
			return fmt.Errorf("%s %d: %w", model.ColGenreID, *movie.GenreID, ErrReferenceNotFound)
		}
	}
	return nil
}

// releaseReferences applies the reference policy to movies whose ref(movie) equals id.
// Must be called with mu held for writing.
func (m *MemoryStore) releaseReferences(what string, id uint, ref func(*model.Movie) **uint) error {
	var users []uint
	for _, movieID := range m.movieOrder {
		if p := *ref(m.movies[movieID]); p != nil && *p == id {
			users = append(users, movieID)
		}
	}
	if len(users) == 0 {
		return nil
	}
	if m.policy == RejectReferenced {
		return fmt.Errorf("%s %d is used by %d movies: %w", what, id, len(users), ErrReferenced)
	}
	now := time.Now()
	for _, movieID := range users {
		next := *m.movies[movieID]
		*ref(&next) = nil
		next.UpdatedAt = now
		m.movies[movieID] = &next
	}
	return nil
}

func without(ids []uint, id uint) []uint {
	filtered := ids[:0]
	for _, item := range ids {
		if item != id {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
