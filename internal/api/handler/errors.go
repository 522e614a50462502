package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/mcoot/imposter/internal/api/apierr"
	"github.com/mcoot/imposter/internal/api/request"
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// decodeRoundRequest reads an optional RoundRequest body
func decodeRoundRequest(r *http.Request) (request.RoundRequest, error) {
	var req request.RoundRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		return req, decodeError(err)
	}
	return req, nil
}

func decodeError(err error) error {
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		return err
	}
	return NewInvalidRequestError("Invalid JSON body")
}
