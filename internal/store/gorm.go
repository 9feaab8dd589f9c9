package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/user/movies-api-go/internal/config"
	"github.com/user/movies-api-go/internal/model"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var _ Store = (*GormStore)(nil)

// GormStore implements Store interface using MySQL or PostgreSQL through gorm
type GormStore struct {
	db     *gorm.DB
	policy ReferencePolicy
}

// NewGormStore creates a new gorm-backed store for the configured driver
func NewGormStore(cfg *config.DBConfig) (*GormStore, error) {
	policy, err := ParseReferencePolicy(cfg.OnDelete)
	if err != nil {
		return nil, err
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverMySQL:
		dialector = mysql.Open(cfg.DSN())
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxConns)
	sqlDB.SetMaxIdleConns(cfg.MaxConns / 2)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Auto migrate tables
	if err := db.AutoMigrate(&model.Director{}, &model.Genre{}, &model.Movie{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &GormStore{db: db, policy: policy}, nil
}

// ListMovies retrieves movies matching every filter column, ordered by id
func (s *GormStore) ListMovies(ctx context.Context, filter model.Fields) ([]*model.Movie, error) {
	// Rejects columns that are not filterable
	if _, err := (&model.Movie{}).Matches(filter); err != nil {
		return nil, err
	}

	query := s.db.WithContext(ctx).Order("id ASC")
	if len(filter) > 0 {
		query = query.Where(map[string]any(filter))
	}

	var movies []*model.Movie
	if err := query.Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return movies, nil
}

// GetMovie retrieves a movie by id
func (s *GormStore) GetMovie(ctx context.Context, id uint) (*model.Movie, error) {
	var movie model.Movie
	if err := first(s.db.WithContext(ctx), &movie, id, "movie"); err != nil {
		return nil, err
	}
	return &movie, nil
}

// CreateMovie inserts a movie after checking that its director and genre exist
func (s *GormStore) CreateMovie(ctx context.Context, fields model.Fields) (*model.Movie, error) {
	movie := &model.Movie{}
	if err := movie.Apply(fields); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkMovieRefs(tx, fields); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(movie).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}
	return movie, nil
}

// UpdateMovie replaces every mutable column of a movie
func (s *GormStore) UpdateMovie(ctx context.Context, id uint, fields model.Fields) (*model.Movie, error) {
	return s.writeMovie(ctx, id, fullFields(model.MovieColumns, fields, movieZero))
}

// PatchMovie writes only the given columns of a movie
func (s *GormStore) PatchMovie(ctx context.Context, id uint, fields model.Fields) (*model.Movie, error) {
	return s.writeMovie(ctx, id, fields)
}

func (s *GormStore) writeMovie(ctx context.Context, id uint, fields model.Fields) (*model.Movie, error) {
	var movie model.Movie
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := first(tx, &movie, id, "movie"); err != nil {
			return err
		}
		if err := movie.Apply(fields); err != nil {
			return err
		}
		if len(fields) == 0 {
			return nil
		}
		if err := checkMovieRefs(tx, fields); err != nil {
			return err
		}
		if err := tx.Model(&movie).Omit(clause.Associations).Updates(map[string]any(fields)).Error; err != nil {
			return fmt.Errorf("failed to update movie: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// DeleteMovie removes a movie
func (s *GormStore) DeleteMovie(ctx context.Context, id uint) error {
	return deleteByID(s.db.WithContext(ctx), &model.Movie{}, id, "movie")
}

// ListDirectors retrieves all directors ordered by id
func (s *GormStore) ListDirectors(ctx context.Context) ([]*model.Director, error) {
	var directors []*model.Director
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&directors).Error; err != nil {
		return nil, fmt.Errorf("failed to list directors: %w", err)
	}
	return directors, nil
}

// GetDirector retrieves a director by id
func (s *GormStore) GetDirector(ctx context.Context, id uint) (*model.Director, error) {
	var director model.Director
	if err := first(s.db.WithContext(ctx), &director, id, "director"); err != nil {
		return nil, err
	}
	return &director, nil
}

// CreateDirector inserts a director
func (s *GormStore) CreateDirector(ctx context.Context, fields model.Fields) (*model.Director, error) {
	director := &model.Director{}
	if err := director.Apply(fields); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(director).Error; err != nil {
		return nil, fmt.Errorf("failed to create director: %w", err)
	}
	return director, nil
}

// UpdateDirector replaces every mutable column of a director
func (s *GormStore) UpdateDirector(ctx context.Context, id uint, fields model.Fields) (*model.Director, error) {
	var director model.Director
	if err := s.writeNamed(ctx, &director, director.Apply, id, fullFields(model.NamedColumns, fields, namedZero), "director"); err != nil {
		return nil, err
	}
	return &director, nil
}

// PatchDirector writes only the given columns of a director
func (s *GormStore) PatchDirector(ctx context.Context, id uint, fields model.Fields) (*model.Director, error) {
	var director model.Director
	if err := s.writeNamed(ctx, &director, director.Apply, id, fields, "director"); err != nil {
		return nil, err
	}
	return &director, nil
}

// DeleteDirector removes a director, applying the reference policy to its movies
func (s *GormStore) DeleteDirector(ctx context.Context, id uint) error {
	return s.deleteReferenced(ctx, &model.Director{}, model.ColDirectorID, id, "director")
}

// ListGenres retrieves all genres ordered by id
func (s *GormStore) ListGenres(ctx context.Context) ([]*model.Genre, error) {
	var genres []*model.Genre
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&genres).Error; err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}
	return genres, nil
}

// GetGenre retrieves a genre by id
func (s *GormStore) GetGenre(ctx context.Context, id uint) (*model.Genre, error) {
	var genre model.Genre
	if err := first(s.db.WithContext(ctx), &genre, id, "genre"); err != nil {
		return nil, err
	}
	return &genre, nil
}

// CreateGenre inserts a genre
func (s *GormStore) CreateGenre(ctx context.Context, fields model.Fields) (*model.Genre, error) {
	genre := &model.Genre{}
	if err := genre.Apply(fields); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(genre).Error; err != nil {
		return nil, fmt.Errorf("failed to create genre: %w", err)
	}
	return genre, nil
}

// UpdateGenre replaces every mutable column of a genre
func (s *GormStore) UpdateGenre(ctx context.Context, id uint, fields model.Fields) (*model.Genre, error) {
	var genre model.Genre
	if err := s.writeNamed(ctx, &genre, genre.Apply, id, fullFields(model.NamedColumns, fields, namedZero), "genre"); err != nil {
		return nil, err
	}
	return &genre, nil
}

// PatchGenre writes only the given columns of a genre
func (s *GormStore) PatchGenre(ctx context.Context, id uint, fields model.Fields) (*model.Genre, error) {
	var genre model.Genre
	if err := s.writeNamed(ctx, &genre, genre.Apply, id, fields, "genre"); err != nil {
		return nil, err
	}
	return &genre, nil
}

// DeleteGenre removes a genre, applying the reference policy to its movies
func (s *GormStore) DeleteGenre(ctx context.Context, id uint) error {
	return s.deleteReferenced(ctx, &model.Genre{}, model.ColGenreID, id, "genre")
}

// writeNamed loads dest, applies fields to it in memory and writes them in one transaction.
// apply must be bound to dest.
func (s *GormStore) writeNamed(ctx context.Context, dest any, apply func(model.Fields) error, id uint, fields model.Fields, what string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := first(tx, dest, id, what); err != nil {
			return err
		}
		if err := apply(fields); err != nil {
			return err
		}
		if len(fields) == 0 {
			return nil
		}
		if err := tx.Model(dest).Updates(map[string]any(fields)).Error; err != nil {
			return fmt.Errorf("failed to update %s: %w", what, err)
		}
		return nil
	})
}

// deleteReferenced deletes a director or genre; fkColumn is the movie column pointing at it
func (s *GormStore) deleteReferenced(ctx context.Context, dest any, fkColumn string, id uint, what string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := first(tx, dest, id, what); err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&model.Movie{}).Where(fkColumn+" = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count movies referencing %s: %w", what, err)
		}

		if count > 0 {
			if s.policy == RejectReferenced {
				return fmt.Errorf("%s %d is used by %d movies: %w", what, id, count, ErrReferenced)
			}
			if err := tx.Model(&model.Movie{}).Where(fkColumn+" = ?", id).Update(fkColumn, nil).Error; err != nil {
				return fmt.Errorf("failed to clear %s references: %w", what, err)
			}
		}

		if err := tx.Delete(dest).Error; err != nil {
			return fmt.Errorf("failed to delete %s: %w", what, err)
		}
		return nil
	})
}

// Ping checks database connectivity
func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying db: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the database connection
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying db: %w", err)
	}
	return sqlDB.Close()
}

// DB returns the underlying gorm.DB; tests use it to clear tables between cases
func (s *GormStore) DB() *gorm.DB {
	return s.db
}

func first(db *gorm.DB, dest any, id uint, what string) error {
	if err := db.First(dest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
		}
		return fmt.Errorf("failed to get %s: %w", what, err)
	}
	return nil
}

func deleteByID(db *gorm.DB, dest any, id uint, what string) error {
	result := db.Delete(dest, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete %s: %w", what, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return nil
}

// checkMovieRefs verifies that non-null director_id and genre_id values point at existing rows
func checkMovieRefs(tx *gorm.DB, fields model.Fields) error {
	refs := []struct {
		column string
		model  any
	}{
		{model.ColDirectorID, &model.Director{}},
		{model.ColGenreID, &model.Genre{}},
	}
	for _, ref := range refs {
		id, ok := fields[ref.column].(uint)
		if !ok {
			continue
		}
		var count int64
		if err := tx.Model(ref.model).Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check %s: %w", ref.column, err)
		}
		if count == 0 {
			return fmt.Errorf("%s %d: %w", ref.column, id, ErrReferenceNotFound)
		}
	}
	return nil
}
