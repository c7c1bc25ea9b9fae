package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/lifetimegps/quiz-engine/internal/pipeline"
)

// ValidationFailedError indicates request validation failed.
type ValidationFailedError struct {
	Field   string
	Message string
}

func (e *ValidationFailedError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// SessionNotFoundError indicates the requested quiz session does not exist.
type SessionNotFoundError struct {
	SessionID string
}

func (e *SessionNotFoundError) Error() string {
	return fmt.Sprintf("session not found: %s", e.SessionID)
}

// SectorConflictError indicates a sector was already submitted for a session.
// Sector responses are immutable; callers must reset the session to retake.
type SectorConflictError struct {
	Sector string
}

func (e *SectorConflictError) Error() string {
	return fmt.Sprintf("sector %q already submitted; reset the session to retake", e.Sector)
}

// CareerNotFoundError indicates the requested career is not in the catalog.
type CareerNotFoundError struct {
	CareerID string
}

func (e *CareerNotFoundError) Error() string {
	return fmt.Sprintf("career not found: %s", e.CareerID)
}

// ResultNotFoundError indicates no stored result of the requested kind exists
// for the session, usually because scoring has not run yet.
type ResultNotFoundError struct {
	SessionID string
	Kind      string
}

func (e *ResultNotFoundError) Error() string {
	return fmt.Sprintf("no %s stored for session %s", e.Kind, e.SessionID)
}

// DatabaseError wraps errors from the persistence layer.
type DatabaseError struct {
	Operation string
	Cause     error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("database error during %s: %v", e.Operation, e.Cause)
}

func (e *DatabaseError) Unwrap() error {
	return e.Cause
}

// HTTPStatus maps an error to the appropriate HTTP status code.
func HTTPStatus(err error) int {
	var validationErr *ValidationFailedError
	var sessionNotFound *SessionNotFoundError
	var sectorConflict *SectorConflictError
	var careerNotFound *CareerNotFoundError
	var resultNotFound *ResultNotFoundError
	var dbErr *DatabaseError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &sessionNotFound):
		return http.StatusNotFound
	case errors.As(err, &careerNotFound):
		return http.StatusNotFound
	case errors.As(err, &resultNotFound):
		return http.StatusNotFound
	case errors.As(err, &sectorConflict):
		return http.StatusConflict
	case errors.Is(err, pipeline.ErrInsufficientData):
		return http.StatusUnprocessableEntity
	case errors.As(err, &dbErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
