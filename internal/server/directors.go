package server

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/hlog"
	"github.com/user/movies-api-go/internal/schema"
)

// @Summary List directors
// @Description Directors are ordered by id.
// @Tags Directors
// @Produce json
// @Success 200 {array} schema.DirectorView
// @Router /directors/ [get]
func (s *Server) listDirectors(w http.ResponseWriter, r *http.Request) {
	directors, err := s.store.ListDirectors(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, schema.DumpDirectors(directors))
}

// @Summary Get a director
// @Tags Directors
// @Produce json
// @Param id path int true "Director id"
// @Success 200 {object} schema.DirectorView
// @Failure 404 "No such record; empty body"
// @Router /directors/{id} [get]
func (s *Server) getDirector(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	director, err := s.store.GetDirector(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, schema.DumpDirector(director))
}

// @Summary Add a director
// @Tags Directors
// @Accept json
// @Produce json
// @Param body body schema.NamedInput true "Director fields"
// @Success 201 {string} string "Director added"
// @Header 201 {string} Location "Path of the new record"
// @Failure 400 {object} ErrorResponse
// @Router /directors/ [post]
func (s *Server) createDirector(w http.ResponseWriter, r *http.Request) {
	fields, ok := decodeBody(w, r, schema.Director.DecodeCreate)
	if !ok {
		return
	}

	director, err := s.store.CreateDirector(r.Context(), fields)
	if err != nil {
		writeError(w, r, err)
		return
	}

	RecordMutation("director", "create")
	hlog.FromRequest(r).Info().Uint("director_id", director.ID).Str("name", director.Name).Msg("Director added")
	respondCreated(w, fmt.Sprintf("/directors/%d", director.ID), "Director added")
}

// @Summary Replace a director
// @Description Every field must be present; nullable fields may be null.
// @Tags Directors
// @Accept json
// @Param id path int true "Director id"
// @Param body body schema.NamedInput true "All director fields"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 "No such record; empty body"
// @Router /directors/{id} [put]
func (s *Server) replaceDirector(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	fields, ok := decodeBody(w, r, schema.Director.DecodeReplace)
	if !ok {
		return
	}

	if _, err := s.store.UpdateDirector(r.Context(), id, fields); err != nil {
		writeError(w, r, err)
		return
	}
	RecordMutation("director", "update")
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Update some director fields
// @Tags Directors
// @Accept json
// @Param id path int true "Director id"
// @Param body body schema.NamedInput true "Any subset of director fields"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 "No such record; empty body"
// @Router /directors/{id} [patch]
func (s *Server) patchDirector(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	fields, ok := decodeBody(w, r, schema.Director.DecodePatch)
	if !ok {
		return
	}

	if _, err := s.store.PatchDirector(r.Context(), id, fields); err != nil {
		writeError(w, r, err)
		return
	}
	RecordMutation("director", "patch")
	w.WriteHeader(http.StatusNoContent)
}

// deleteDirector removes a director; movies pointing at it follow the store's reference policy
// @Summary Delete a director
// @Tags Directors
// @Param id path int true "Director id"
// @Success 204
// @Failure 404 "No such record; empty body"
// @Failure 409 {object} ErrorResponse "Still used by movies under the reject policy"
// @Router /directors/{id} [delete]
func (s *Server) deleteDirector(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if err := s.store.DeleteDirector(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	RecordMutation("director", "delete")
	hlog.FromRequest(r).Info().Uint("director_id", id).Msg("Director deleted")
	w.WriteHeader(http.StatusNoContent)
}
