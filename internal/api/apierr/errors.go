package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/imposter/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Suggested is the nearest valid value for a rejected count
	Suggested *int `json:"suggested,omitempty"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest         = "INVALID_REQUEST"
	CodeInvalidPlayerCount     = "INVALID_PLAYER_COUNT"
	CodeInvalidImposterCount   = "INVALID_IMPOSTER_COUNT"
	CodeImposterExceedsPlayers = "IMPOSTER_EXCEEDS_PLAYERS"
	CodeEmptyWordPool          = "EMPTY_WORD_POOL"
	CodeUnknownCategory        = "UNKNOWN_CATEGORY"
	CodeWordBankNotLoaded      = "WORD_BANK_NOT_LOADED"
	CodeNoActiveSession        = "NO_ACTIVE_SESSION"
	CodeInvalidTransition      = "INVALID_TRANSITION"
	CodeStaleRound             = "STALE_ROUND"
	CodeRequestTooLarge        = "REQUEST_TOO_LARGE"
	CodeInternalError          = "INTERNAL_ERROR"
)

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

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	var suggested *int
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		suggested = &verr.Suggested
	}

	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		return &httpError{http.StatusRequestEntityTooLarge, APIError{Code: CodeRequestTooLarge, Message: "Request body too large"}}
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrInvalidPlayerCount):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPlayerCount, "At least 3 players are needed", suggested}}
	case errors.Is(err, model.ErrInvalidImposterCount):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidImposterCount, "There must be at least one imposter", suggested}}
	case errors.Is(err, model.ErrImposterExceedsPlayers):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeImposterExceedsPlayers, Message: "There cannot be more imposters than players"}}
	case errors.Is(err, model.ErrUnknownCategory):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeUnknownCategory, Message: "Unknown category"}}
	case errors.Is(err, model.ErrEmptyWordPool):
		return &httpError{http.StatusUnprocessableEntity, APIError{Code: CodeEmptyWordPool, Message: "The selected category has no words"}}
	case errors.Is(err, model.ErrWordBankNotLoaded):
		return &httpError{http.StatusServiceUnavailable, APIError{Code: CodeWordBankNotLoaded, Message: "Word bank not loaded"}}
	case errors.Is(err, model.ErrNoActiveSession):
		return &httpError{http.StatusConflict, APIError{Code: CodeNoActiveSession, Message: "No round in progress"}}
	case errors.Is(err, model.ErrInvalidTransition):
		return &httpError{http.StatusConflict, APIError{Code: CodeInvalidTransition, Message: err.Error()}}
	case errors.Is(err, model.ErrStaleRound):
		return &httpError{http.StatusConflict, APIError{Code: CodeStaleRound, Message: "That round is no longer being played"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidRequest, Message: message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
}
