package batch

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrymomot/safeinput"
)

// Item is the outcome for one input of a batch.
type Item[U any] struct {
	Index int
	Value U
	Err   error
}

// Option configures a batch run.
type Option func(*options)

type options struct {
	concurrency int
	timeout     time.Duration
}

// WithConcurrency caps the number of inputs processed at once. Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithTimeout bounds each item's run time, measured from when it acquires a
// concurrency slot. The item's context is cancelled on expiry and the item
// carries ErrTimeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// Run applies fn to every input concurrently and returns results in input order.
// A failing input never affects the others.
func Run[U any](ctx context.Context, inputs []string, fn func(context.Context, string) (U, error), opts ...Option) []Item[U] {
	o := options{concurrency: len(inputs)}
	for _, opt := range opts {
		opt(&o)
	}

	sem := make(chan struct{}, max(o.concurrency, 1))
	limited := func(ctx context.Context, input string) (U, error) {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			var zero U
			return zero, ctx.Err()
		}
		defer func() { <-sem }()

		if o.timeout <= 0 {
			return fn(ctx, input)
		}
		return runWithTimeout(ctx, o.timeout, input, fn)
	}

	futures := make([]*Future[U], len(inputs))
	for i, input := range inputs {
		futures[i] = Go(ctx, input, limited)
	}

	items := make([]Item[U], len(inputs))
	for i, f := range futures {
		v, err := f.Await()
		items[i] = Item[U]{Index: i, Value: v, Err: err}
	}
	return items
}

// runWithTimeout runs fn under a deadline that starts now. The item context is
// cancelled on expiry; a fn that ignores it is abandoned and its result dropped.
func runWithTimeout[U any](ctx context.Context, timeout time.Duration, input string, fn func(context.Context, string) (U, error)) (U, error) {
	itemCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		v   U
		err error
	}
	done := make(chan result, 1)
	go func() {
		v, err := fn(itemCtx, input)
		done <- result{v, err}
	}()

	var zero U
	select {
	case r := <-done:
		if r.err != nil && ctx.Err() == nil && errors.Is(r.err, context.DeadlineExceeded) {
			return zero, ErrTimeout
		}
		return r.v, r.err
	case <-itemCtx.Done():
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		return zero, ErrTimeout
	}
}

// ValidateAll runs safeinput.SanitizeAndValidateContext for every input.
func ValidateAll[T any](ctx context.Context, inputs []string, v safeinput.Validator[T], cfg *safeinput.Config, opts ...Option) []Item[safeinput.SanitizedInput[T]] {
	return Run(ctx, inputs, func(ctx context.Context, input string) (safeinput.SanitizedInput[T], error) {
		return safeinput.SanitizeAndValidateContext(ctx, input, v, cfg)
	}, opts...)
}

// Failed returns the items that carry an error.
func Failed[U any](items []Item[U]) []Item[U] {
	var out []Item[U]
	for _, it := range items {
		if it.Err != nil {
			out = append(out, it)
		}
	}
	return out
}
