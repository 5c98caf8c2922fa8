package safeinput

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Decode performs one pass of percent-decoding. Every valid %XX escape is
// decoded; malformed ones ('%' not followed by two hex digits) are kept as
// literal text and '+' is left alone. If the decoded bytes are not valid UTF-8
// the input is returned unchanged.
func Decode(input string) string {
	if !strings.Contains(input, "%") {
		return input
	}

	var b strings.Builder
	b.Grow(len(input))
	for i := 0; i < len(input); i++ {
		if input[i] == '%' && i+2 < len(input) {
			if n, err := strconv.ParseUint(input[i+1:i+3], 16, 8); err == nil {
				b.WriteByte(byte(n))
				i += 2
				continue
			}
		}
		b.WriteByte(input[i])
	}

	decoded := b.String()
	if !utf8.ValidString(decoded) {
		return input
	}
	return decoded
}

// Sanitize splits input into the characters to keep and the forbidden ones it removed.
// Both outputs preserve input order and multiplicity. It never fails.
func Sanitize(input string, cfg *Config) (string, []rune) {
	var cleaned strings.Builder
	cleaned.Grow(len(input))
	found := make([]rune, 0, 8)

	for _, r := range input {
		if cfg.IsCharForbidden(r) {
			found = append(found, r)
			continue
		}
		cleaned.WriteRune(r)
	}

	return cleaned.String(), found
}
