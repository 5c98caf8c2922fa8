package safeinput

import "context"

// Validator converts sanitized text into a domain value.
// Implementations must be safe for concurrent use.
type Validator[T any] interface {
	// Validate returns the typed value or a ValidationError describing the mismatch.
	Validate(input string) (T, error)
	// TargetType is a short label used in InvalidFormat errors.
	TargetType() string
}

// ContextValidator is implemented by validators that may block, for example on a remote lookup.
// Validators without it are called through Validate.
type ContextValidator[T any] interface {
	ValidateContext(ctx context.Context, input string) (T, error)
}

// ValidateContext calls v.ValidateContext when v supports it and v.Validate otherwise.
func ValidateContext[T any](ctx context.Context, v Validator[T], input string) (T, error) {
	if cv, ok := v.(ContextValidator[T]); ok {
		return cv.ValidateContext(ctx, input)
	}
	return v.Validate(input)
}

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc[T any] struct {
	name string
	fn   func(string) (T, error)
}

// NewValidator wraps fn as a Validator reporting targetType in format errors.
func NewValidator[T any](targetType string, fn func(string) (T, error)) ValidatorFunc[T] {
	return ValidatorFunc[T]{name: targetType, fn: fn}
}

func (f ValidatorFunc[T]) Validate(input string) (T, error) { return f.fn(input) }
func (f ValidatorFunc[T]) TargetType() string                { return f.name }
