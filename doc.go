// Package safeinput provides a sanitize-then-validate pipeline for untrusted text.
//
// Every input goes through the same fixed sequence before business logic sees it:
//
//  1. One pass of percent-decoding (best effort, malformed escapes are kept as literal text).
//  2. A character scan that splits the text into clean characters and forbidden ones.
//  3. A hard gate: any forbidden character rejects the input with DangerousCharacters.
//  4. A heuristic denylist of regular expressions: a match rejects with BlockedPattern.
//  5. A caller-supplied Validator that turns the cleaned text into a typed value.
//
// On success the typed value is returned together with the original, untouched input
// so it can be recorded for audit.
//
// Basic Usage:
//
//	type emailValidator struct{}
//
//	func (emailValidator) TargetType() string { return "email" }
//
//	func (v emailValidator) Validate(s string) (string, error) {
//		if !strings.Contains(s, "@") {
//			return "", safeinput.InvalidFormat(v.TargetType())
//		}
//		return s, nil
//	}
//
//	cfg := safeinput.Default()
//	res, err := safeinput.SanitizeAndValidate("good@example.com", emailValidator{}, cfg)
//	if err != nil {
//		// errors.Is(err, safeinput.ErrDangerousCharacters), ...
//	}
//	fmt.Println(res.Cleaned())
//
// Custom Configuration:
//
//	cfg := safeinput.NewBuilder().
//		WithDefaultForbiddenChars().
//		AddForbiddenChar('$').
//		MustAddBlockedPattern(`(?i)password`).
//		Build()
//
// A Config is immutable once built and safe to share between goroutines without locking.
// The pipeline itself never starts goroutines. SanitizeAndValidateContext passes the
// caller's context to validators implementing ContextValidator; that call is the only
// place the pipeline may block on something other than CPU work.
//
// Blocked-pattern rejections always carry GenericPatternMarker instead of the matched
// expression so the denylist is not disclosed to the sender of the input.
package safeinput
