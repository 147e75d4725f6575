package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gtsdev/usuarios/internal/common"
	"github.com/gtsdev/usuarios/internal/server/models"
)

var errTrailingData = errors.New("unexpected data after JSON value")

func (s *HTTPServer) listUsers(w http.ResponseWriter, r *http.Request) {
	result, err := s.users.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if result == nil {
		result = []models.User{}
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *HTTPServer) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseID(w, r)
	if !ok {
		return
	}

	u, err := s.users.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, u)
}

func (s *HTTPServer) createUser(w http.ResponseWriter, r *http.Request) {
	var candidate models.User
	if !s.decodeBody(w, r, &candidate) {
		return
	}

	u, err := s.users.Create(r.Context(), candidate)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, u)
}

func (s *HTTPServer) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseID(w, r)
	if !ok {
		return
	}

	var candidate models.User
	if !s.decodeBody(w, r, &candidate) {
		return
	}

	u, err := s.users.Update(r.Context(), id, candidate)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, u)
}

func (s *HTTPServer) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseID(w, r)
	if !ok {
		return
	}

	if err := s.users.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, common.MessageUserDeleted)
}

// parseID reads the {id} path parameter as an unsigned 32-bit integer and
// answers 400 when it is not one.
func (s *HTTPServer) parseID(w http.ResponseWriter, r *http.Request) (uint32, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		s.logger.Debug(r.Context(), "invalid user id", "id", raw, "error", err)
		writeJSON(w, http.StatusBadRequest, common.MessageInvalidID)
		return 0, false
	}
	return uint32(id), true
}

// decodeBody reads exactly one JSON value of at most maxBodyBytes into dst.
// Trailing data after the value is rejected like malformed JSON.
func (s *HTTPServer) decodeBody(w http.ResponseWriter, r *http.Request, dst *models.User) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	err := dec.Decode(dst)
	if err == nil {
		if err = dec.Decode(&struct{}{}); errors.Is(err, io.EOF) {
			return true
		}
		if err == nil {
			err = errTrailingData
		}
	}

	s.logger.Debug(r.Context(), "invalid request body", "error", err, "request_id", RequestIDFromContext(r.Context()))

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, common.MessageBodyTooLarge)
		return false
	}
	writeJSON(w, http.StatusBadRequest, common.MessageInvalidBody)
	return false
}

func (s *HTTPServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		writeJSON(w, http.StatusNotFound, common.MessageUserNotFound)
	case errors.Is(err, common.ErrorInvalidInput):
		writeJSON(w, http.StatusBadRequest, common.MessageInvalidInput)
	case errors.Is(err, common.ErrorAlreadyExists):
		writeJSON(w, http.StatusConflict, common.MessageAlreadyExists)
	default:
		s.logger.Error(r.Context(), err.Error(), "request_id", RequestIDFromContext(r.Context()))
		writeJSON(w, http.StatusInternalServerError, common.MessageInternal)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
