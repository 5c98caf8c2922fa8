package validator

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrymomot/safeinput"
)

// Checker runs the safeinput pipeline with a fixed validator and erases its result type.
type Checker interface {
	Check(ctx context.Context, input string, cfg *safeinput.Config) (Result, error)
	TargetType() string
}

// Result is a type-erased safeinput.SanitizedInput.
type Result struct {
	Original string `json:"original"`
	Cleaned  any    `json:"cleaned"`
}

type checker[T any] struct {
	v safeinput.Validator[T]
}

func (c checker[T]) Check(ctx context.Context, input string, cfg *safeinput.Config) (Result, error) {
	res, err := safeinput.SanitizeAndValidateContext(ctx, input, c.v, cfg)
	if err != nil {
		return Result{}, err
	}
	return Result{Original: res.Original(), Cleaned: res.Cleaned()}, nil
}

func (c checker[T]) TargetType() string { return c.v.TargetType() }

// NewChecker adapts v to the Checker interface.
func NewChecker[T any](v safeinput.Validator[T]) Checker {
	return checker[T]{v: v}
}

// Registry maps names to checkers. Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	checkers map[string]Checker
}

func NewRegistry() *Registry {
	return &Registry{checkers: make(map[string]Checker)}
}

// Register adds v under name. Go methods cannot be generic, hence a function.
func Register[T any](r *Registry, name string, v safeinput.Validator[T]) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.checkers[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateValidator, name)
	}
	r.checkers[name] = NewChecker(v)
	return nil
}

// MustRegister is like Register but panics on duplicates.
func MustRegister[T any](r *Registry, name string, v safeinput.Validator[T]) {
	if err := Register(r, name, v); err != nil {
		panic(err)
	}
}

func (r *Registry) Lookup(name string) (Checker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.checkers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownValidator, name)
	}
	return c, nil
}

// Names returns registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.checkers))
	for name := range r.checkers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// DefaultRegistry returns a registry holding every validator of this package
// with the limits used by the bundled CLI and HTTP server.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	MustRegister(r, "email", Email{})
	MustRegister(r, "username", Username{})
	MustRegister(r, "phone", Phone{})
	MustRegister(r, "command", Command{})
	MustRegister(r, "number", Number{})
	MustRegister(r, "password", Password{MinLength: 8, RequireSpecial: true})
	MustRegister(r, "length", Length{Max: 255})
	MustRegister(r, "text", TextMessage{})
	return r
}
