package server

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/hlog"
	"github.com/user/movies-api-go/internal/schema"
)

// listMovies handles GET /movies/, optionally filtered by director_id and genre_id
// @Summary List movies
// @Description Movies are ordered by id. director_id and genre_id narrow the list; both together intersect.
// @Tags Movies
// @Produce json
// @Param director_id query int false "Only movies by this director"
// @Param genre_id query int false "Only movies in this genre"
// @Success 200 {array} schema.MovieView
// @Failure 400 {object} ErrorResponse
// @Router /movies/ [get]
func (s *Server) listMovies(w http.ResponseWriter, r *http.Request) {
	filter, err := schema.Movie.DecodeFilter(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	movies, err := s.store.ListMovies(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, schema.DumpMovies(movies))
}

// @Summary Get a movie
// @Tags Movies
// @Produce json
// @Param id path int true "Movie id"
// @Success 200 {object} schema.MovieView
// @Failure 404 "No such record; empty body"
// @Router /movies/{id} [get]
func (s *Server) getMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	movie, err := s.store.GetMovie(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, schema.DumpMovie(movie))
}

// @Summary Add a movie
// @Tags Movies
// @Accept json
// @Produce json
// @Param body body schema.MovieInput true "Movie fields"
// @Success 201 {string} string "Movie added"
// @Header 201 {string} Location "Path of the new record"
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /movies/ [post]
func (s *Server) createMovie(w http.ResponseWriter, r *http.Request) {
	fields, ok := decodeBody(w, r, schema.Movie.DecodeCreate)
	if !ok {
		return
	}

	movie, err := s.store.CreateMovie(r.Context(), fields)
	if err != nil {
		writeError(w, r, err)
		return
	}

	RecordMutation("movie", "create")
	hlog.FromRequest(r).Info().Uint("movie_id", movie.ID).Str("title", movie.Title).Msg("Movie added")
	respondCreated(w, fmt.Sprintf("/movies/%d", movie.ID), "Movie added")
}

// replaceMovie handles PUT: every field is written
// @Summary Replace a movie
// @Description Every field must be present; nullable fields may be null.
// @Tags Movies
// @Accept json
// @Param id path int true "Movie id"
// @Param body body schema.MovieInput true "All movie fields"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 "No such record; empty body"
// @Failure 422 {object} ErrorResponse
// @Router /movies/{id} [put]
func (s *Server) replaceMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	fields, ok := decodeBody(w, r, schema.Movie.DecodeReplace)
	if !ok {
		return
	}

	if _, err := s.store.UpdateMovie(r.Context(), id, fields); err != nil {
		writeError(w, r, err)
		return
	}
	RecordMutation("movie", "update")
	w.WriteHeader(http.StatusNoContent)
}

// patchMovie handles PATCH: only the fields present are written
// @Summary Update some movie fields
// @Tags Movies
// @Accept json
// @Param id path int true "Movie id"
// @Param body body schema.MovieInput true "Any subset of movie fields"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 "No such record; empty body"
// @Failure 422 {object} ErrorResponse
// @Router /movies/{id} [patch]
func (s *Server) patchMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	fields, ok := decodeBody(w, r, schema.Movie.DecodePatch)
	if !ok {
		return
	}

	if _, err := s.store.PatchMovie(r.Context(), id, fields); err != nil {
		writeError(w, r, err)
		return
	}
	RecordMutation("movie", "patch")
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Delete a movie
// @Tags Movies
// @Param id path int true "Movie id"
// @Success 204
// @Failure 404 "No such record; empty body"
// @Router /movies/{id} [delete]
func (s *Server) deleteMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if err := s.store.DeleteMovie(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	RecordMutation("movie", "delete")
	hlog.FromRequest(r).Info().Uint("movie_id", id).Msg("Movie deleted")
	w.WriteHeader(http.StatusNoContent)
}
