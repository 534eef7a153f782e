package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"leaguedash/internal/clients"
	"leaguedash/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeLeagueNotFound   = "LEAGUE_NOT_FOUND"
	CodePlayerNotFound   = "PLAYER_NOT_FOUND"
	CodeUpstreamError    = "UPSTREAM_ERROR"
	CodeStoreUnavailable = "STORE_UNAVAILABLE"
	CodeInternalError    = "INTERNAL_ERROR"
)

// loadFailedMessage is the single user-facing message for any failed
// load; raw upstream status codes are never exposed
const loadFailedMessage = "Failed to load league data"

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError. This is the one place
// internal error kinds become user-facing messages.
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	if _, ok := clients.AsFetchError(err); ok {
		return &httpError{http.StatusBadGateway, APIError{CodeUpstreamError, loadFailedMessage}}
	}

	switch {
	case errors.Is(err, model.ErrLeagueNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeLeagueNotFound, "League not found"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrOwnershipNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Ownership stat not found"}}
	case errors.Is(err, model.ErrInvalidResponseFormat):
		return &httpError{http.StatusBadGateway, APIError{CodeUpstreamError, loadFailedMessage}}
	case errors.Is(err, model.ErrStoreUnavailable):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeStoreUnavailable, loadFailedMessage}}
	case errors.Is(err, model.ErrStoreIO):
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, loadFailedMessage}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates a generic internal error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
