package safeinput

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies which stage rejected an input.
type Kind string

const (
	KindDangerousCharacters Kind = "dangerous_characters"
	KindInvalidFormat       Kind = "invalid_format"
	KindBlockedPattern      Kind = "blocked_pattern"
	KindCustom              Kind = "custom"
)

// GenericPatternMarker is reported instead of the matched expression on blocked-pattern rejections.
const GenericPatternMarker = "blocked pattern detected"

// Sentinel errors matched by ValidationError.Is.
var (
	ErrDangerousCharacters = errors.New("dangerous characters")
	ErrInvalidFormat       = errors.New("invalid format")
	ErrBlockedPattern      = errors.New("blocked pattern")
	ErrCustom              = errors.New("custom validation failure")

	// ErrInvalidPattern is returned by Builder.AddBlockedPattern for bad regular expressions.
	ErrInvalidPattern = errors.New("invalid blocked pattern")
)

// ValidationError describes why an input was rejected.
// Only the fields relevant to Kind are populated.
type ValidationError struct {
	Kind       Kind
	Symbols    string // DangerousCharacters: quoted offending characters
	Count      int    // DangerousCharacters: total number of offending characters
	TargetType string // InvalidFormat: validator type label
	Pattern    string // BlockedPattern
	Message    string // Custom
}

func (e ValidationError) Error() string {
	switch e.Kind {
	case KindDangerousCharacters:
		return fmt.Sprintf("input contains %d dangerous characters: %s", e.Count, e.Symbols)
	case KindInvalidFormat:
		return fmt.Sprintf("input format validation failed for type %s", e.TargetType)
	case KindBlockedPattern:
		return fmt.Sprintf("input matches blocked pattern: %s", e.Pattern)
	case KindCustom:
		return fmt.Sprintf("custom validation failed: %s", e.Message)
	default:
		return "validation failed"
	}
}

// Is lets errors.Is match a ValidationError against the kind sentinels.
func (e ValidationError) Is(target error) bool {
	switch target {
	case ErrDangerousCharacters:
		return e.Kind == KindDangerousCharacters
	case ErrInvalidFormat:
		return e.Kind == KindInvalidFormat
	case ErrBlockedPattern:
		return e.Kind == KindBlockedPattern
	case ErrCustom:
		return e.Kind == KindCustom
	}
	return false
}

// DangerousCharacters builds the error for the forbidden-character gate.
// Duplicates are kept so Count equals the number of removed characters.
func DangerousCharacters(found []rune) ValidationError {
	quoted := make([]string, len(found))
	for i, r := range found {
		quoted[i] = "'" + string(r) + "'"
	}
	return ValidationError{
		Kind:    KindDangerousCharacters,
		Symbols: strings.Join(quoted, ", "),
		Count:   len(found),
	}
}

// InvalidFormat reports that the validator could not parse the input as targetType.
func InvalidFormat(targetType string) ValidationError {
	return ValidationError{Kind: KindInvalidFormat, TargetType: targetType}
}

// BlockedPattern reports a denylist match; callers pass GenericPatternMarker.
func BlockedPattern(pattern string) ValidationError {
	return ValidationError{Kind: KindBlockedPattern, Pattern: pattern}
}

// Custom reports a validator-defined failure such as a length limit or business rule.
func Custom(message string) ValidationError {
	return ValidationError{Kind: KindCustom, Message: message}
}

// Customf is Custom with a formatted message.
func Customf(format string, args ...any) ValidationError {
	return Custom(fmt.Sprintf(format, args...))
}

// AsValidationError extracts a ValidationError from err's chain.
func AsValidationError(err error) (ValidationError, bool) {
	var ve ValidationError
	if err == nil {
		return ve, false
	}
	if errors.As(err, &ve) {
		return ve, true
	}
	return ve, false
}

// IsValidationError reports whether err's chain contains a ValidationError.
func IsValidationError(err error) bool {
	_, ok := AsValidationError(err)
	return ok
}
