package validator

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/safeinput"
)

// SpecialChars is the set Password.RequireSpecial looks for.
const SpecialChars = "!@#$%^&*"

// Password enforces a minimum length and, optionally, one special character.
type Password struct {
	MinLength      int
	RequireSpecial bool
}

func (Password) TargetType() string { return "password" }

func (v Password) Validate(input string) (string, error) {
	err := Apply(
		Rule{
			Check: func() bool { return utf8.RuneCountInString(input) >= v.MinLength },
			Error: safeinput.Customf("password must be at least %d characters", v.MinLength),
		},
		Rule{
			Check: func() bool { return !v.RequireSpecial || strings.ContainsAny(input, SpecialChars) },
			Error: safeinput.Custom("password must contain at least one special character"),
		},
	)
	if err != nil {
		return "", err
	}
	return input, nil
}

// PasswordHash checks the password policy and returns a bcrypt hash instead of the plain text.
type PasswordHash struct {
	Password Password
	Cost     int // bcrypt.DefaultCost when zero
}

func (PasswordHash) TargetType() string { return "password_hash" }

func (v PasswordHash) Validate(input string) ([]byte, error) {
	return v.ValidateContext(context.Background(), input)
}

// ValidateContext returns ctx.Err() when ctx is done before hashing starts.
func (v PasswordHash) ValidateContext(ctx context.Context, input string) ([]byte, error) {
	if _, err := v.Password.Validate(input); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cost := v.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(input), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}
