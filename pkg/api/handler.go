package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/safeinput"
	"github.com/dmitrymomot/safeinput/pkg/batch"
	"github.com/dmitrymomot/safeinput/pkg/logger"
	"github.com/dmitrymomot/safeinput/pkg/validator"
)

const (
	defaultMaxBodySize      = 1 << 20
	defaultBatchConcurrency = 8
)

// CheckRequest is the body of POST /v1/check/{kind}.
type CheckRequest struct {
	Input string `json:"input" validate:"required"`
}

// BatchRequest is the body of POST /v1/check/{kind}/batch.
type BatchRequest struct {
	Inputs []string `json:"inputs" validate:"required,min=1,max=100"`
}

// BatchItem is the outcome for one input of a batch, in request order.
type BatchItem struct {
	Index int               `json:"index"`
	Data  *validator.Result `json:"data,omitempty"`
	Error *ErrorDetail      `json:"error,omitempty"`
}

// BatchResult is the data of a batch response.
type BatchResult struct {
	Items    []BatchItem `json:"items"`
	Accepted int         `json:"accepted"`
	Rejected int         `json:"rejected"`
}

// RulesResult describes the active configuration without disclosing pattern sources.
type RulesResult struct {
	ForbiddenChars []string `json:"forbidden_chars"`
	PatternCount   int      `json:"pattern_count"`
	Validators     []string `json:"validators"`
}

// Handler serves the check API for one registry and rule set.
type Handler struct {
	registry         *validator.Registry
	cfg              *safeinput.Config
	log              *slog.Logger
	maxBodySize      int64
	batchConcurrency int
	batchTimeout     time.Duration
	readyChecks      []func(context.Context) error
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger used for rejections and failures.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithMaxBodySize caps request bodies in bytes.
func WithMaxBodySize(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodySize = n
		}
	}
}

// WithBatchConcurrency caps how many batch inputs are checked at once.
func WithBatchConcurrency(n int) Option {
	return func(h *Handler) {
		if n > 0 {
			h.batchConcurrency = n
		}
	}
}

// WithBatchTimeout bounds how long each batch item may take.
func WithBatchTimeout(d time.Duration) Option {
	return func(h *Handler) {
		h.batchTimeout = d
	}
}

// WithReadinessChecks adds checks served on GET /ready.
func WithReadinessChecks(checks ...func(context.Context) error) Option {
	return func(h *Handler) {
		h.readyChecks = append(h.readyChecks, checks...)
	}
}

// New creates a Handler. A nil cfg uses safeinput.Default and a nil registry
// uses validator.DefaultRegistry.
func New(registry *validator.Registry, cfg *safeinput.Config, opts ...Option) *Handler {
	if registry == nil {
		registry = validator.DefaultRegistry()
	}
	if cfg == nil {
		cfg = safeinput.Default()
	}
	h := &Handler{
		registry:         registry,
		cfg:              cfg,
		log:              logger.Discard(),
		maxBodySize:      defaultMaxBodySize,
		batchConcurrency: defaultBatchConcurrency,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.log = h.log.With(logger.Component("api"))
	return h
}

// Check handles POST /v1/check/{kind}.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	checker, err := h.registry.Lookup(kind)
	if err != nil {
		JSONError(w, err)
		return
	}

	var req CheckRequest
	if err := bindJSON(w, r, h.maxBodySize, &req); err != nil {
		JSONError(w, err)
		return
	}

	res, err := checker.Check(r.Context(), req.Input, h.cfg)
	if err != nil {
		h.logFailure(r.Context(), checker, req.Input, err)
		JSONError(w, err)
		return
	}
	JSON(w, "accepted", res)
}

// CheckBatch handles POST /v1/check/{kind}/batch.
func (h *Handler) CheckBatch(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	checker, err := h.registry.Lookup(kind)
	if err != nil {
		JSONError(w, err)
		return
	}

	var req BatchRequest
	if err := bindJSON(w, r, h.maxBodySize, &req); err != nil {
		JSONError(w, err)
		return
	}

	opts := []batch.Option{batch.WithConcurrency(h.batchConcurrency)}
	if h.batchTimeout > 0 {
		opts = append(opts, batch.WithTimeout(h.batchTimeout))
	}
	items := batch.Run(r.Context(), req.Inputs, func(ctx context.Context, input string) (validator.Result, error) {
		return checker.Check(ctx, input, h.cfg)
	}, opts...)

	out := BatchResult{Items: make([]BatchItem, len(items))}
	for i, item := range items {
		out.Items[i] = BatchItem{Index: item.Index}
		if item.Err != nil {
			h.logFailure(r.Context(), checker, req.Inputs[i], item.Err)
			out.Items[i].Error = ErrorBody(item.Err)
			out.Rejected++
			continue
		}
		res := item.Value
		out.Items[i].Data = &res
		out.Accepted++
	}
	JSON(w, "batch", out)
}

// Rules handles GET /v1/rules.
func (h *Handler) Rules(w http.ResponseWriter, r *http.Request) {
	chars := h.cfg.ForbiddenChars()
	out := RulesResult{
		ForbiddenChars: make([]string, len(chars)),
		PatternCount:   len(h.cfg.BlockedPatterns()),
		Validators:     h.registry.Names(),
	}
	for i, c := range chars {
		out.ForbiddenChars[i] = string(c)
	}
	JSON(w, "rules", out)
}

// logFailure records why an input was rejected. The raw input is never logged.
func (h *Handler) logFailure(ctx context.Context, checker validator.Checker, input string, err error) {
	attrs := []any{logger.TargetType(checker.TargetType()), logger.InputLength(input)}
	if safeinput.IsValidationError(err) {
		h.log.InfoContext(ctx, "input rejected", append(attrs, logger.Rejection(err))...)
		return
	}
	h.log.ErrorContext(ctx, "input check failed", append(attrs, logger.Error(err))...)
}
