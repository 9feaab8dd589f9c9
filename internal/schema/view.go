package schema

import "github.com/user/movies-api-go/internal/model"

// MovieView is the wire form of a movie
type MovieView struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Trailer     *string  `json:"trailer"`
	Year        *int     `json:"year"`
	Rating      *float64 `json:"rating"`
	GenreID     *uint    `json:"genre_id"`
	DirectorID  *uint    `json:"director_id"`
}

// DirectorView is the wire form of a director
type DirectorView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// GenreView is the wire form of a genre
type GenreView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// DumpMovie projects a stored movie onto its wire form
func DumpMovie(m *model.Movie) MovieView {
	return MovieView{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Trailer:     m.Trailer,
		Year:        m.Year,
		Rating:      m.Rating,
		GenreID:     m.GenreID,
		DirectorID:  m.DirectorID,
	}
}

// DumpMovies projects movies in order. The result is never nil, so an empty list encodes as [].
func DumpMovies(movies []*model.Movie) []MovieView {
	out := make([]MovieView, 0, len(movies))
	for _, m := range movies {
		out = append(out, DumpMovie(m))
	}
	return out
}

// DumpDirector projects a stored director onto its wire form
func DumpDirector(d *model.Director) DirectorView {
	return DirectorView{ID: d.ID, Name: d.Name}
}

// DumpDirectors projects directors in order; never nil
func DumpDirectors(directors []*model.Director) []DirectorView {
	out := make([]DirectorView, 0, len(directors))
	for _, d := range directors {
		out = append(out, DumpDirector(d))
	}
	return out
}

// DumpGenre projects a stored genre onto its wire form
func DumpGenre(g *model.Genre) GenreView {
	return GenreView{ID: g.ID, Name: g.Name}
}

// DumpGenres projects genres in order; never nil
func DumpGenres(genres []*model.Genre) []GenreView {
	out := make([]GenreView, 0, len(genres))
	for _, g := range genres {
		out = append(out, DumpGenre(g))
	}
	return out
}

// MovieInput lists the writable movie fields for the API docs.
// Requests are decoded through Movie, never into this type.
type MovieInput struct {
	Title       string   `json:"title" example:"Inception"`
	Description *string  `json:"description"`
	Trailer     *string  `json:"trailer" example:"https://www.youtube.com/watch?v=YoHD9XEInc0"`
	Year        *int     `json:"year" example:"2010"`
	Rating      *float64 `json:"rating" example:"8.8"`
	GenreID     *uint    `json:"genre_id" example:"1"`
	DirectorID  *uint    `json:"director_id" example:"1"`
}

// NamedInput lists the writable fields of directors and genres for the API docs
type NamedInput struct {
	Name string `json:"name" example:"Christopher Nolan"`
}
