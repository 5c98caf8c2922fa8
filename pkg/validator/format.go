package validator

import (
	"regexp"

	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/safeinput"
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{5,32}$`)
	phoneRegex    = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	commandRegex  = regexp.MustCompile(`^/[a-zA-Z0-9_]{1,31}$`)

	// tags is goroutine-safe and caches parsed tag definitions.
	tags = playground.New(playground.WithRequiredStructEnabled())
)

// Email accepts an address matching the RFC 5322 subset used by go-playground's "email" tag.
type Email struct{}

func (Email) TargetType() string { return "email" }

func (v Email) Validate(input string) (string, error) {
	if err := tags.Var(input, "required,email"); err != nil {
		return "", safeinput.InvalidFormat(v.TargetType())
	}
	return input, nil
}

// Username accepts 5 to 32 letters, digits or underscores.
type Username struct{}

func (Username) TargetType() string { return "username" }

func (v Username) Validate(input string) (string, error) {
	return matchFormat(input, usernameRegex, v.TargetType())
}

// Phone accepts E.164-style numbers with an optional leading plus.
type Phone struct{}

func (Phone) TargetType() string { return "phone_number" }

func (v Phone) Validate(input string) (string, error) {
	return matchFormat(input, phoneRegex, v.TargetType())
}

// Command accepts a bot command such as /start.
type Command struct{}

func (Command) TargetType() string { return "command" }

func (v Command) Validate(input string) (string, error) {
	return matchFormat(input, commandRegex, v.TargetType())
}

func matchFormat(input string, re *regexp.Regexp, targetType string) (string, error) {
	err := Apply(Rule{
		Check: func() bool { return re.MatchString(input) },
		Error: safeinput.InvalidFormat(targetType),
	})
	if err != nil {
		return "", err
	}
	return input, nil
}
