// Package validator provides ready-made safeinput.Validator implementations for the
// inputs chat bots, forms and command-line tools usually accept: email addresses,
// usernames, phone numbers, bot commands, numbers, passwords and free-form text.
//
// Validators receive text that already passed the safeinput security gates, so they
// only check shape and business rules. Failures are reported as safeinput.ValidationError:
// shape mismatches use InvalidFormat with the validator's TargetType, rule violations
// (length limits, password policy) use Custom with a human-readable message.
//
// # Architecture
//
// Simple checks are expressed as Rule values evaluated by Apply, which stops at the
// first failing rule. Each validator is a small value type without mutable state and is
// safe for concurrent use.
//
// A Registry maps names to type-erased Checkers so transports (HTTP, CLI) can select
// a validator at runtime:
//
//	reg := validator.DefaultRegistry()
//	c, err := reg.Lookup("email")
//	if err != nil {
//	    // validator.ErrUnknownValidator
//	}
//	res, err := c.Check(ctx, input, safeinput.Default())
//
// # Usage
//
//	res, err := safeinput.SanitizeAndValidate(input, validator.Email{}, cfg)
//	hashed, err := safeinput.SanitizeAndValidateContext(ctx, input, validator.PasswordHash{
//	    Password: validator.Password{MinLength: 12, RequireSpecial: true},
//	}, cfg)
package validator
