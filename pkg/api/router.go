package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/safeinput/pkg/httpserver"
	"github.com/dmitrymomot/safeinput/pkg/requestid"
)

// Router mounts the API:
//
//	POST /v1/check/{kind}
//	POST /v1/check/{kind}/batch
//	GET  /v1/rules
//	GET  /health
//	GET  /ready
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		JSONError(w, ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		JSONError(w, ErrMethodNotAllowed)
	})

	r.Get("/health", httpserver.HealthCheckHandler(h.log))
	r.Get("/ready", httpserver.HealthCheckHandler(h.log, h.readyChecks...))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/rules", h.Rules)
		r.Post("/check/{kind}", h.Check)
		r.Post("/check/{kind}/batch", h.CheckBatch)
	})

	return r
}
