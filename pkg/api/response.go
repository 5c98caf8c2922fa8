package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/safeinput"
	"github.com/dmitrymomot/safeinput/pkg/batch"
	"github.com/dmitrymomot/safeinput/pkg/validator"
)

// JSONResponse is the envelope of every API response.
type JSONResponse struct {
	Code  string       `json:"code,omitempty"`
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body JSONResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// JSON writes a 200 envelope carrying data.
func JSON(w http.ResponseWriter, code string, data any) {
	writeJSON(w, http.StatusOK, JSONResponse{Code: code, Data: data})
}

// JSONError writes an error envelope. The status is derived from err:
//
//   - safeinput.ValidationError: 422, error code is the Kind
//   - unknown validator: 404
//   - batch timeouts: 504
//   - binding and body validation errors: 400 (415 for a wrong media type, 413 for an oversized body)
//   - HTTPError: its own status
//   - anything else: 500 with a generic message
func JSONError(w http.ResponseWriter, err error) {
	status, detail := classify(err)
	writeJSON(w, status, JSONResponse{Code: detail.Code, Error: detail})
}

// ErrorBody converts err to the error detail used in envelopes and batch items.
func ErrorBody(err error) *ErrorDetail {
	_, detail := classify(err)
	return detail
}

func classify(err error) (int, *ErrorDetail) {
	if verr, ok := safeinput.AsValidationError(err); ok {
		return http.StatusUnprocessableEntity, rejectionDetail(verr)
	}

	var fieldErrs playground.ValidationErrors
	var maxBytes *http.MaxBytesError
	var httpErr HTTPError
	switch {
	case errors.Is(err, validator.ErrUnknownValidator):
		return http.StatusNotFound, &ErrorDetail{Code: ErrNotFound.Key, Message: err.Error()}
	case errors.As(err, &fieldErrs):
		details := make(map[string][]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			details[fe.Field()] = append(details[fe.Field()], fe.Tag())
		}
		return http.StatusBadRequest, &ErrorDetail{Code: ErrBadRequest.Key, Message: ErrInvalidBody.Error(), Details: details}
	case errors.As(err, &maxBytes):
		return ErrRequestEntityTooLarge.Code, &ErrorDetail{Code: ErrRequestEntityTooLarge.Key, Message: http.StatusText(ErrRequestEntityTooLarge.Code)}
	case errors.Is(err, ErrMissingContentType), errors.Is(err, ErrUnsupportedMediaType):
		return ErrUnsupportedMediaType.Code, &ErrorDetail{Code: ErrUnsupportedMediaType.Key, Message: err.Error()}
	case errors.Is(err, batch.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return ErrGatewayTimeout.Code, &ErrorDetail{Code: ErrGatewayTimeout.Key, Message: err.Error()}
	case errors.Is(err, ErrInvalidJSON):
		return http.StatusBadRequest, &ErrorDetail{Code: ErrBadRequest.Key, Message: err.Error()}
	case errors.As(err, &httpErr):
		return httpErr.Code, &ErrorDetail{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}
	}
	return http.StatusInternalServerError, &ErrorDetail{
		Code:    ErrInternalServerError.Key,
		Message: http.StatusText(http.StatusInternalServerError),
	}
}

func rejectionDetail(verr safeinput.ValidationError) *ErrorDetail {
	detail := &ErrorDetail{Code: string(verr.Kind), Message: verr.Error()}
	switch verr.Kind {
	case safeinput.KindDangerousCharacters:
		detail.Details = map[string][]string{
			"symbols": {verr.Symbols},
			"count":   {strconv.Itoa(verr.Count)},
		}
	case safeinput.KindInvalidFormat:
		detail.Details = map[string][]string{"target_type": {verr.TargetType}}
	}
	return detail
}
