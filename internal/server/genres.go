package server

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/hlog"
	"github.com/user/movies-api-go/internal/schema"
)

// @Summary List genres
// @Description Genres are ordered by id.
// @Tags Genres
// @Produce json
// @Success 200 {array} schema.GenreView
// @Router /genres/ [get]
func (s *Server) listGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := s.store.ListGenres(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, schema.DumpGenres(genres))
}

// @Summary Get a genre
// @Tags Genres
// @Produce json
// @Param id path int true "Genre id"
// @Success 200 {object} schema.GenreView
// @Failure 404 "No such record; empty body"
// @Router /genres/{id} [get]
func (s *Server) getGenre(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	genre, err := s.store.GetGenre(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, schema.DumpGenre(genre))
}

// @Summary Add a genre
// @Tags Genres
// @Accept json
// @Produce json
// @Param body body schema.NamedInput true "Genre fields"
// @Success 201 {string} string "Genre added"
// @Header 201 {string} Location "Path of the new record"
// @Failure 400 {object} ErrorResponse
// @Router /genres/ [post]
func (s *Server) createGenre(w http.ResponseWriter, r *http.Request) {
	fields, ok := decodeBody(w, r, schema.Genre.DecodeCreate)
	if !ok {
		return
	}

	genre, err := s.store.CreateGenre(r.Context(), fields)
	if err != nil {
		writeError(w, r, err)
		return
	}

	RecordMutation("genre", "create")
	hlog.FromRequest(r).Info().Uint("genre_id", genre.ID).Str("name", genre.Name).Msg("Genre added")
	respondCreated(w, fmt.Sprintf("/genres/%d", genre.ID), "Genre added")
}

// @Summary Replace a genre
// @Description Every field must be present; nullable fields may be null.
// @Tags Genres
// @Accept json
// @Param id path int true "Genre id"
// @Param body body schema.NamedInput true "All genre fields"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 "No such record; empty body"
// @Router /genres/{id} [put]
func (s *Server) replaceGenre(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	fields, ok := decodeBody(w, r, schema.Genre.DecodeReplace)
	if !ok {
		return
	}

	if _, err := s.store.UpdateGenre(r.Context(), id, fields); err != nil {
		writeError(w, r, err)
		return
	}
	RecordMutation("genre", "update")
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Update some genre fields
// @Tags Genres
// @Accept json
// @Param id path int true "Genre id"
// @Param body body schema.NamedInput true "Any subset of genre fields"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 "No such record; empty body"
// @Router /genres/{id} [patch]
func (s *Server) patchGenre(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	fields, ok := decodeBody(w, r, schema.Genre.DecodePatch)
	if !ok {
		return
	}

	if _, err := s.store.PatchGenre(r.Context(), id, fields); err != nil {
		writeError(w, r, err)
		return
	}
	RecordMutation("genre", "patch")
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Delete a genre
// @Tags Genres
// @Param id path int true "Genre id"
// @Success 204
// @Failure 404 "No such record; empty body"
// @Failure 409 {object} ErrorResponse "Still used by movies under the reject policy"
// @Router /genres/{id} [delete]
func (s *Server) deleteGenre(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if err := s.store.DeleteGenre(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	RecordMutation("genre", "delete")
	hlog.FromRequest(r).Info().Uint("genre_id", id).Msg("Genre deleted")
	w.WriteHeader(http.StatusNoContent)
}
