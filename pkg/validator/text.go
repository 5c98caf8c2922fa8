package validator

import (
	"context"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/safeinput"
)

// DefaultMaxMessageLength matches the Telegram message limit.
const DefaultMaxMessageLength = 4096

// Length rejects input longer than Max characters.
type Length struct {
	Max int
}

func (Length) TargetType() string { return "length" }

func (v Length) Validate(input string) (string, error) {
	err := Apply(Rule{
		Check: func() bool { return utf8.RuneCountInString(input) <= v.Max },
		Error: safeinput.Customf("input exceeds maximum length of %d characters", v.Max),
	})
	if err != nil {
		return "", err
	}
	return input, nil
}

// TextMessage accepts free-form text up to MaxLength characters and returns it in NFC form.
type TextMessage struct {
	MaxLength int // DefaultMaxMessageLength when zero
}

func (TextMessage) TargetType() string { return "text_message" }

func (v TextMessage) Validate(input string) (string, error) {
	limit := v.MaxLength
	if limit <= 0 {
		limit = DefaultMaxMessageLength
	}

	normalized := norm.NFC.String(input)
	err := Apply(Rule{
		Check: func() bool { return utf8.RuneCountInString(normalized) <= limit },
		Error: safeinput.Custom("message too long"),
	})
	if err != nil {
		return "", err
	}
	return normalized, nil
}

func (v TextMessage) ValidateContext(ctx context.Context, input string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return v.Validate(input)
}
