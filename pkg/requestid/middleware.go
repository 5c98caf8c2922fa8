package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"

	"github.com/dmitrymomot/safeinput"
)

const (
	Header      = "X-Request-ID"
	maxIDLength = 128
)

var idFormat = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// IDValidator accepts client-supplied request IDs: 1-128 characters of
// letters, digits, '-' and '_'.
var IDValidator = safeinput.NewValidator("request_id", func(s string) (string, error) {
	if len(s) == 0 || len(s) > maxIDLength || !idFormat.MatchString(s) {
		return "", safeinput.InvalidFormat("request_id")
	}
	return s, nil
})

// Middleware attaches a request ID to every request. A client-supplied header is
// screened with the default safeinput rules and IDValidator; anything rejected is
// replaced by a fresh UUID. The chosen ID is stored in the context and echoed in
// the response header.
func Middleware(next http.Handler) http.Handler {
	cfg := safeinput.Default()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		if header := r.Header.Get(Header); header != "" {
			if res, err := safeinput.SanitizeAndValidate(header, IDValidator, cfg); err == nil {
				requestID = res.Cleaned()
			}
		}
		w.Header().Set(Header, requestID)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), requestID)))
	})
}
