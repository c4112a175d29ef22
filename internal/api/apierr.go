package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/BerylCAtieno/persona-writer-agent/internal/llm"
	"github.com/BerylCAtieno/persona-writer-agent/internal/profiler"
	"github.com/BerylCAtieno/persona-writer-agent/internal/service"
	"github.com/BerylCAtieno/persona-writer-agent/internal/store"
)

// Error carries the HTTP status and machine-readable code for a failed request.
type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func NewError(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// classify maps pipeline and store errors onto HTTP statuses. fallbackCode
// names the operation for anything unrecognized.
func classify(err error, fallbackCode string) *Error {
	var apiErr *Error
	switch {
	case errors.As(err, &apiErr):
		return apiErr
	case errors.Is(err, service.ErrInvalidInput):
		return NewError(http.StatusBadRequest, "invalid_request", err)
	case errors.Is(err, store.ErrNotFound):
		return NewError(http.StatusNotFound, "not_found", err)
	case errors.Is(err, llm.ErrTransport):
		return NewError(http.StatusServiceUnavailable, "llm_unavailable", err)
	case errors.Is(err, profiler.ErrNoStructuredData):
		return NewError(http.StatusBadGateway, "no_structured_data", err)
	case errors.Is(err, service.ErrGenerationFailed):
		return NewError(http.StatusInternalServerError, "generation_failed", err)
	default:
		return NewError(http.StatusInternalServerError, fallbackCode, err)
	}
}
