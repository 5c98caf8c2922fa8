package safeinput

import (
	"errors"
	"regexp"
	"slices"
)

// defaultForbiddenChars covers HTML/XML markup, quoting, escaping and statement separators.
var defaultForbiddenChars = []rune{'<', '>', '&', '\'', '"', '\\', ';', '`'}

// Pre-compiled default denylist. Order matters only for which pattern matches first.
var defaultBlockedPatterns = []*regexp.Regexp{
	// SQL injection
	regexp.MustCompile(`(?i)(drop\s+table|delete\s+from|insert\s+into|select\s+\*|union\s+all|update\s+.*\s+set|--|;|\bexec\b)`),
	// XSS
	regexp.MustCompile(`(?i)(<script>|javascript:|on\w+\s*=|alert\(|eval\(|document\.|window\.)`),
	// Path traversal
	regexp.MustCompile(`(\.\./|\.\.\\|%2e%2e%2f|%2e%2e%5c)`),
	// Doubly encoded payloads surviving the single decode pass
	regexp.MustCompile(`(?:%[0-9a-fA-F]{2}){2,}`),
	// Command injection
	regexp.MustCompile("(?i)(\\||&&|;|`|\\$\\(|\\bexec\\b|\\bsystem\\b|\\brm\\b|\\bdel\\b)"),
}

// Config is an immutable set of sanitization rules.
// Build one at startup and share the pointer; no method mutates it.
type Config struct {
	forbidden map[rune]struct{}
	patterns  []*regexp.Regexp
}

// Default returns a configuration with the recommended forbidden characters and blocked patterns.
func Default() *Config {
	return NewBuilder().
		WithDefaultForbiddenChars().
		WithDefaultBlockedPatterns().
		Build()
}

// IsCharForbidden reports whether r is in the forbidden set.
func (c *Config) IsCharForbidden(r rune) bool {
	if c == nil {
		return false
	}
	_, ok := c.forbidden[r]
	return ok
}

// HasBlockedPattern reports whether s matches any blocked pattern.
// Patterns are tried in insertion order and the scan stops at the first match.
func (c *Config) HasBlockedPattern(s string) bool {
	if c == nil {
		return false
	}
	for _, re := range c.patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// ForbiddenChars returns the forbidden set as a sorted slice.
func (c *Config) ForbiddenChars() []rune {
	if c == nil {
		return nil
	}
	out := make([]rune, 0, len(c.forbidden))
	for r := range c.forbidden {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

// BlockedPatterns returns the source of every blocked pattern in match order.
func (c *Config) BlockedPatterns() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.patterns))
	for i, re := range c.patterns {
		out[i] = re.String()
	}
	return out
}

// Builder assembles a Config. The zero value is an empty builder.
type Builder struct {
	forbidden map[rune]struct{}
	patterns  []*regexp.Regexp
}

// NewBuilder returns a builder with no forbidden characters and no patterns.
func NewBuilder() *Builder {
	return &Builder{forbidden: make(map[rune]struct{})}
}

func (b *Builder) ensureSet() {
	if b.forbidden == nil {
		b.forbidden = make(map[rune]struct{})
	}
}

// WithDefaultForbiddenChars adds < > & ' " \ ; and the backtick.
func (b *Builder) WithDefaultForbiddenChars() *Builder {
	b.ensureSet()
	for _, r := range defaultForbiddenChars {
		b.forbidden[r] = struct{}{}
	}
	return b
}

// WithDefaultBlockedPatterns appends the SQL injection, XSS, path traversal,
// encoded payload and command injection heuristics.
func (b *Builder) WithDefaultBlockedPatterns() *Builder {
	b.patterns = append(b.patterns, defaultBlockedPatterns...)
	return b
}

// AddForbiddenChar adds r to the forbidden set.
func (b *Builder) AddForbiddenChar(r rune) *Builder {
	b.ensureSet()
	b.forbidden[r] = struct{}{}
	return b
}

// AddForbiddenChars adds every rune of s to the forbidden set.
func (b *Builder) AddForbiddenChars(s string) *Builder {
	b.ensureSet()
	for _, r := range s {
		b.forbidden[r] = struct{}{}
	}
	return b
}

// AddBlockedPattern compiles expr and appends it to the pattern list.
// The builder is left unchanged when expr is not a valid regular expression.
func (b *Builder) AddBlockedPattern(expr string) (*Builder, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return b, errors.Join(ErrInvalidPattern, err)
	}
	b.patterns = append(b.patterns, re)
	return b, nil
}

// MustAddBlockedPattern is like AddBlockedPattern but panics on invalid syntax.
// Intended for package-level initialization with literal expressions.
func (b *Builder) MustAddBlockedPattern(expr string) *Builder {
	if _, err := b.AddBlockedPattern(expr); err != nil {
		panic(err)
	}
	return b
}

// Build returns a Config snapshot of the builder state.
// The builder may keep being used; later changes never reach configs built earlier.
func (b *Builder) Build() *Config {
	forbidden := make(map[rune]struct{}, len(b.forbidden))
	for r := range b.forbidden {
		forbidden[r] = struct{}{}
	}
	return &Config{
		forbidden: forbidden,
		patterns:  slices.Clone(b.patterns),
	}
}
