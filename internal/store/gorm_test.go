package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/user/movies-api-go/internal/config"
	"github.com/user/movies-api-go/internal/model"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestStore is a helper to create a test store with a real MySQL database
func setupTestStore(t *testing.T, onDelete string) (*GormStore, func()) {
	// Use environment variables or defaults for test database
	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		host = "localhost"
	}
	port := 3306
	user := os.Getenv("TEST_DB_USER")
	if user == "" {
		user = "root"
	}
	password := os.Getenv("TEST_DB_PASSWORD")
	if password == "" {
		password = "root"
	}
	database := os.Getenv("TEST_DB_NAME")
	if database == "" {
		database = "movies_test"
	}

	cfg := &config.DBConfig{
		Driver:   config.DriverMySQL,
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		Database: database,
		MaxConns: 5,
		OnDelete: onDelete,
	}

	// First connect without database to create it if needed
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.User, cfg.Password, cfg.Host, cfg.Port)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Skipf("Skipping test: cannot connect to MySQL: %v", err)
	}

	// Create test database
	db.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", database))

	sqlDB, _ := db.DB()
	sqlDB.Close()

	// Now connect to the test database
	store, err := NewGormStore(cfg)
	if err != nil {
		t.Skipf("Skipping test: cannot create store: %v", err)
	}

	wipe := func() {
		store.DB().Exec("DELETE FROM movie")
		store.DB().Exec("DELETE FROM director")
		store.DB().Exec("DELETE FROM genre")
	}
	wipe()

	cleanup := func() {
		wipe()
		store.Close()
	}

	return store, cleanup
}

func TestGormStore_CRUD(t *testing.T) {
	store, cleanup := setupTestStore(t, config.OnDeleteNullify)
	defer cleanup()
	ctx := context.Background()

	d, err := store.CreateDirector(ctx, model.Fields{model.ColName: "Nolan"})
	if err != nil {
		t.Fatalf("CreateDirector() error = %v", err)
	}
	if d.ID == 0 {
		t.Fatal("CreateDirector() did not assign an id")
	}

	m, err := store.CreateMovie(ctx, model.Fields{
		model.ColTitle:      "Inception",
		model.ColYear:       2010,
		model.ColRating:     8.8,
		model.ColDirectorID: d.ID,
	})
	if err != nil {
		t.Fatalf("CreateMovie() error = %v", err)
	}

	got, err := store.GetMovie(ctx, m.ID)
	if err != nil {
		t.Fatalf("GetMovie() error = %v", err)
	}
	if got.Title != "Inception" || got.DirectorID == nil || *got.DirectorID != d.ID {
		t.Errorf("GetMovie() = %+v", got)
	}

	if _, err := store.PatchMovie(ctx, m.ID, model.Fields{model.ColTrailer: "https://example.com/t"}); err != nil {
		t.Fatalf("PatchMovie() error = %v", err)
	}
	got, _ = store.GetMovie(ctx, m.ID)
	if got.Trailer == nil || *got.Trailer != "https://example.com/t" || got.Year == nil || *got.Year != 2010 {
		t.Errorf("PatchMovie() result = %+v", got)
	}

	if _, err := store.UpdateDirector(ctx, d.ID, model.Fields{model.ColName: "C. Nolan"}); err != nil {
		t.Fatalf("UpdateDirector() error = %v", err)
	}
	gotDirector, _ := store.GetDirector(ctx, d.ID)
	if gotDirector.Name != "C. Nolan" {
		t.Errorf("Name = %q, want %q", gotDirector.Name, "C. Nolan")
	}

	if err := store.DeleteMovie(ctx, m.ID); err != nil {
		t.Fatalf("DeleteMovie() error = %v", err)
	}
	if err := store.DeleteMovie(ctx, m.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteMovie() error = %v, want ErrNotFound", err)
	}
	if _, err := store.GetMovie(ctx, m.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetMovie() after delete error = %v, want ErrNotFound", err)
	}
}

func TestGormStore_ReferencePolicies(t *testing.T) {
	ctx := context.Background()

	t.Run("nullify", func(t *testing.T) {
		store, cleanup := setupTestStore(t, config.OnDeleteNullify)
		defer cleanup()

		g, _ := store.CreateGenre(ctx, model.Fields{model.ColName: "Drama"})
		m, err := store.CreateMovie(ctx, model.Fields{model.ColTitle: "Heat", model.ColGenreID: g.ID})
		if err != nil {
			t.Fatalf("CreateMovie() error = %v", err)
		}
		if err := store.DeleteGenre(ctx, g.ID); err != nil {
			t.Fatalf("DeleteGenre() error = %v", err)
		}
		got, err := store.GetMovie(ctx, m.ID)
		if err != nil {
			t.Fatalf("GetMovie() error = %v", err)
		}
		if got.GenreID != nil {
			t.Errorf("GenreID = %v, want nil", *got.GenreID)
		}
	})

	t.Run("reject", func(t *testing.T) {
		store, cleanup := setupTestStore(t, config.OnDeleteReject)
		defer cleanup()

		g, _ := store.CreateGenre(ctx, model.Fields{model.ColName: "Drama"})
		if _, err := store.CreateMovie(ctx, model.Fields{model.ColTitle: "Heat", model.ColGenreID: g.ID}); err != nil {
			t.Fatalf("CreateMovie() error = %v", err)
		}
		if err := store.DeleteGenre(ctx, g.ID); !errors.Is(err, ErrReferenced) {
			t.Errorf("DeleteGenre() error = %v, want ErrReferenced", err)
		}
	})

	t.Run("unknown reference", func(t *testing.T) {
		store, cleanup := setupTestStore(t, config.OnDeleteNullify)
		defer cleanup()

		_, err := store.CreateMovie(ctx, model.Fields{model.ColTitle: "Orphan", model.ColDirectorID: uint(999999)})
		if !errors.Is(err, ErrReferenceNotFound) {
			t.Errorf("CreateMovie() error = %v, want ErrReferenceNotFound", err)
		}
	})
}

// Property: Filter Exactness against MySQL
// For any assignment of directors to movies, filtering by director_id returns exactly that director's movies.
func TestProperty_GormMovieFilter(t *testing.T) {
	store, cleanup := setupTestStore(t, config.OnDeleteNullify)
	defer cleanup()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20
	properties := gopter.NewProperties(parameters)

	properties.Property("director filter returns exactly that director's movies", prop.ForAll(
		func(assignments []int) bool {
			ctx := context.Background()
			store.DB().Exec("DELETE FROM movie")
			store.DB().Exec("DELETE FROM director")

			a, _ := store.CreateDirector(ctx, model.Fields{model.ColName: "a"})
			b, _ := store.CreateDirector(ctx, model.Fields{model.ColName: "b"})

			want := 0
			for _, pick := range assignments {
				fields := model.Fields{model.ColTitle: "m"}
				switch pick {
				case 1:
					fields[model.ColDirectorID] = a.ID
					want++
				case 2:
					fields[model.ColDirectorID] = b.ID
				}
				if _, err := store.CreateMovie(ctx, fields); err != nil {
					return false
				}
			}

			movies, err := store.ListMovies(ctx, model.Fields{model.ColDirectorID: a.ID})
			if err != nil || len(movies) != want {
				return false
			}
			for _, m := range movies {
				if m.DirectorID == nil || *m.DirectorID != a.ID {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(8, gen.IntRange(0, 2)),
	))

	properties.TestingRun(t)
}
