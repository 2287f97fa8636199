package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kailas-cloud/pokedex/internal/domain"
)

// ErrorCode is the machine-readable error code in API error bodies.
type ErrorCode string

// Error codes returned by the API.
const (
	ErrorCodeBadRequest    ErrorCode = "bad_request"
	ErrorCodeInvalidPage   ErrorCode = "invalid_page"
	ErrorCodeInvalidLimit  ErrorCode = "invalid_limit"
	ErrorCodeUpstreamError ErrorCode = "upstream_error"
	ErrorCodeInternalError ErrorCode = "internal_error"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

func defaultErrorHandlers() []errorHandler {
	return []errorHandler{
		sentinelHandler(domain.ErrInvalidPage, http.StatusBadRequest, ErrorCodeInvalidPage),
		sentinelHandler(domain.ErrInvalidLimit, http.StatusBadRequest, ErrorCodeInvalidLimit),
		sentinelHandler(domain.ErrUpstreamDecode, http.StatusBadGateway, ErrorCodeUpstreamError),
		sentinelHandler(domain.ErrUpstream, http.StatusBadGateway, ErrorCodeUpstreamError),
	}
}

// sentinelHandler maps a sentinel to a status. The client sees the sentinel text only.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, sentinel.Error())
		return true
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
