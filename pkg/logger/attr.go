package logger

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/dmitrymomot/safeinput"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error". Nil errors yield an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// TargetType records the validator type label.
func TargetType(name string) slog.Attr {
	return slog.String("target_type", name)
}

// InputLength records the byte length of an input. Raw input is never logged.
func InputLength(s string) slog.Attr {
	return slog.Int("input_length", len(s))
}

// Rejection describes why safeinput rejected an input under the key "rejection".
// The group holds the kind plus count or message where relevant; it never contains
// the offending characters or the input itself. Non-validation errors yield Error(err).
func Rejection(err error) slog.Attr {
	ve, ok := safeinput.AsValidationError(err)
	if !ok {
		return Error(err)
	}

	attrs := []slog.Attr{slog.String("kind", string(ve.Kind))}
	switch ve.Kind {
	case safeinput.KindDangerousCharacters:
		attrs = append(attrs, slog.Int("count", ve.Count))
	case safeinput.KindInvalidFormat:
		attrs = append(attrs, slog.String("target_type", ve.TargetType))
	case safeinput.KindCustom:
		attrs = append(attrs, slog.String("message", ve.Message))
	}
	return Group("rejection", attrs...)
}
