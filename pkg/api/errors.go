package api

import (
	"errors"
	"net/http"
)

// HTTPError pairs a status code with a machine-readable key used as the
// envelope's error code.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

var (
	ErrBadRequest            = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrNotFound              = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrMethodNotAllowed      = HTTPError{Code: http.StatusMethodNotAllowed, Key: "method_not_allowed"}
	ErrRequestEntityTooLarge = HTTPError{Code: http.StatusRequestEntityTooLarge, Key: "request_entity_too_large"}
	ErrUnsupportedMediaType  = HTTPError{Code: http.StatusUnsupportedMediaType, Key: "unsupported_media_type"}
	ErrInternalServerError   = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
	ErrGatewayTimeout        = HTTPError{Code: http.StatusGatewayTimeout, Key: "gateway_timeout"}
)

// Binding errors.
var (
	ErrMissingContentType = errors.New("missing content type")
	ErrInvalidJSON        = errors.New("invalid JSON")
	ErrInvalidBody        = errors.New("invalid request body")
)
