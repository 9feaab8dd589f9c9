package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	"github.com/user/movies-api-go/internal/model"
	"github.com/user/movies-api-go/internal/schema"
	"github.com/user/movies-api-go/internal/store"
)

// Error codes carried in error bodies
const (
	codeValidation       = "VALIDATION_ERROR"
	codeInvalidReference = "INVALID_REFERENCE"
	codeReferenced       = "REFERENCED"
	codeRateLimited      = "RATE_LIMITED"
	codeInternal         = "INTERNAL_ERROR"
)

const maxBodyBytes = 1 << 20

// ErrorResponse is the body of every non-404 error
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes what went wrong; Details maps field names to messages
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func respondError(w http.ResponseWriter, status int, code, message string, details map[string]string) {
	respondJSON(w, status, ErrorResponse{Error: ErrorDetail{
		Code:    code,
		Message: message,
		Details: details,
	}})
}

// respondCreated answers a create with a confirmation message and the new record's location
func respondCreated(w http.ResponseWriter, location, message string) {
	w.Header().Set("Location", location)
	respondJSON(w, http.StatusCreated, message)
}

// writeError maps store and decode errors to responses
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var decodeErr *schema.Error
	switch {
	case errors.As(err, &decodeErr):
		RecordError("validation")
		respondError(w, http.StatusBadRequest, codeValidation, decodeErr.Message, decodeErr.FieldErrors)
	case errors.Is(err, store.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, store.ErrReferenceNotFound):
		RecordError("invalid_reference")
		respondError(w, http.StatusUnprocessableEntity, codeInvalidReference, err.Error(), nil)
	case errors.Is(err, store.ErrReferenced):
		RecordError("referenced")
		respondError(w, http.StatusConflict, codeReferenced, err.Error(), nil)
	case errors.Is(err, model.ErrUnknownField), errors.Is(err, model.ErrInvalidValue):
		RecordError("validation")
		respondError(w, http.StatusBadRequest, codeValidation, err.Error(), nil)
	default:
		RecordError("internal")
		hlog.FromRequest(r).Error().Err(err).Msg("Request failed")
		respondError(w, http.StatusInternalServerError, codeInternal, "internal server error", nil)
	}
}

// pathID parses the {id} segment; anything but a positive integer that fits a signed
// 64-bit column names no record
func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 63)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// decodeBody reads the request body and runs it through decode
func decodeBody(w http.ResponseWriter, r *http.Request, decode func([]byte) (model.Fields, error)) (model.Fields, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, r, &schema.Error{Message: "could not read request body: " + err.Error()})
		return nil, false
	}
	fields, err := decode(body)
	if err != nil {
		writeError(w, r, err)
		return nil, false
	}
	return fields, true
}
