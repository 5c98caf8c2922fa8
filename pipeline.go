package safeinput

import (
	"context"
	"encoding/json"
)

// SanitizedInput pairs the raw input with the value produced by the validator.
// It can only be obtained from the pipeline.
type SanitizedInput[T any] struct {
	original string
	cleaned  T
}

// Original returns the input exactly as received, before decoding.
func (s SanitizedInput[T]) Original() string { return s.original }

// Cleaned returns the validator's result.
func (s SanitizedInput[T]) Cleaned() T { return s.cleaned }

func (s SanitizedInput[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Original string `json:"original"`
		Cleaned  T      `json:"cleaned"`
	}{s.original, s.cleaned})
}

// SanitizeAndValidate runs the full pipeline and blocks until the validator returns.
func SanitizeAndValidate[T any](input string, v Validator[T], cfg *Config) (SanitizedInput[T], error) {
	cleaned, err := screen(input, cfg)
	if err != nil {
		return SanitizedInput[T]{}, err
	}

	result, err := v.Validate(cleaned)
	if err != nil {
		return SanitizedInput[T]{}, err
	}
	return SanitizedInput[T]{original: input, cleaned: result}, nil
}

// SanitizeAndValidateContext is SanitizeAndValidate for validators that may block.
// Decoding and both security gates run synchronously; ctx is handed to the validator
// through ContextValidator when implemented.
func SanitizeAndValidateContext[T any](ctx context.Context, input string, v Validator[T], cfg *Config) (SanitizedInput[T], error) {
	cleaned, err := screen(input, cfg)
	if err != nil {
		return SanitizedInput[T]{}, err
	}

	result, err := ValidateContext(ctx, v, cleaned)
	if err != nil {
		return SanitizedInput[T]{}, err
	}
	return SanitizedInput[T]{original: input, cleaned: result}, nil
}

// Screen applies decoding and both security gates without a domain validator.
// It returns the cleaned text that a validator would receive.
func Screen(input string, cfg *Config) (string, error) {
	return screen(input, cfg)
}

func screen(input string, cfg *Config) (string, error) {
	cleaned, found := Sanitize(Decode(input), cfg)
	if len(found) > 0 {
		return "", DangerousCharacters(found)
	}
	if cfg.HasBlockedPattern(cleaned) {
		return "", BlockedPattern(GenericPatternMarker)
	}
	return cleaned, nil
}
