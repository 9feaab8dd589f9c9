package model

import (
	"time"
)

// Movie columns
const (
	ColTitle       = "title"
	ColDescription = "description"
	ColTrailer     = "trailer"
	ColYear        = "year"
	ColRating      = "rating"
	ColGenreID     = "genre_id"
	ColDirectorID  = "director_id"
)

// MovieColumns lists the mutable columns of a movie in declaration order
var MovieColumns = []string{
	ColTitle, ColDescription, ColTrailer, ColYear, ColRating, ColGenreID, ColDirectorID,
}

// Movie represents a movie optionally linked to one genre and one director
type Movie struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"size:255"`
	Description *string   `gorm:"type:text"`
	Trailer     *string   `gorm:"size:255"`
	Year        *int
	Rating      *float64
	GenreID     *uint     `gorm:"index"`
	Genre       *Genre    `gorm:"foreignKey:GenreID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	DirectorID  *uint     `gorm:"index"`
	Director    *Director `gorm:"foreignKey:DirectorID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for Movie
func (Movie) TableName() string {
	return "movie"
}

// Apply writes the given columns onto the movie
func (m *Movie) Apply(fields Fields) error {
	for col, v := range fields {
		var ok bool
		switch col {
		case ColTitle:
			m.Title, ok = asString(v)
		case ColDescription:
			m.Description, ok = asOptString(v)
		case ColTrailer:
			m.Trailer, ok = asOptString(v)
		case ColYear:
			m.Year, ok = asOptInt(v)
		case ColRating:
			m.Rating, ok = asOptFloat(v)
		case ColGenreID:
			m.GenreID, ok = asOptRef(v)
		case ColDirectorID:
			m.DirectorID, ok = asOptRef(v)
		default:
			return unknownField("movie", col)
		}
		if !ok {
			return invalidValue("movie", col, v)
		}
	}
	return nil
}

// Matches reports whether every filter column equals the movie's value
func (m *Movie) Matches(filter Fields) (bool, error) {
	for col, v := range filter {
		var got *uint
		switch col {
		case ColGenreID:
			got = m.GenreID
		case ColDirectorID:
			got = m.DirectorID
		default:
			return false, unknownField("movie", col)
		}
		want, ok := asOptRef(v)
		if !ok {
			return false, invalidValue("movie", col, v)
		}
		if !sameRef(got, want) {
			return false, nil
		}
	}
	return true, nil
}

func sameRef(a, b *uint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
