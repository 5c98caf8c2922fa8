package safeinput_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/safeinput"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "decodes angle brackets", input: "%3Cb%3E", expected: "<b>"},
		{name: "decodes lowercase hex", input: "%3cb%3e", expected: "<b>"},
		{name: "decodes only once", input: "%253C", expected: "%3C"},
		{name: "keeps plus sign", input: "a+b", expected: "a+b"},
		{name: "leaves plain text unchanged", input: "hello world", expected: "hello world"},
		{name: "keeps malformed escape and decodes the rest", input: "100%zz%3C", expected: "100%zz<"},
		{name: "keeps trailing percent", input: "%3Cb%3E%", expected: "<b>%"},
		{name: "keeps truncated escape", input: "%3Cb%3", expected: "<b%3"},
		{name: "keeps percent before escape", input: "%%3C", expected: "%<"},
		{name: "rejects signed hex", input: "%+F%3C", expected: "%+F<"},
		{name: "falls back on invalid utf-8", input: "%FF%3C", expected: "%FF%3C"},
		{name: "decodes multibyte utf-8", input: "caf%C3%A9", expected: "café"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, safeinput.Decode(tt.input))
		})
	}
}

func TestSanitize(t *testing.T) {
	cfg := safeinput.Default()

	tests := []struct {
		name    string
		input   string
		cleaned string
		found   []rune
	}{
		{name: "clean input", input: "hello", cleaned: "hello", found: []rune{}},
		{name: "keeps order and duplicates", input: "a<<b>c", cleaned: "abc", found: []rune{'<', '<', '>'}},
		{name: "all forbidden", input: `'";`, cleaned: "", found: []rune{'\'', '"', ';'}},
		{name: "unicode preserved", input: "привет<мир", cleaned: "приветмир", found: []rune{'<'}},
		{name: "empty", input: "", cleaned: "", found: []rune{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleaned, found := safeinput.Sanitize(tt.input, cfg)
			assert.Equal(t, tt.cleaned, cleaned)
			assert.Equal(t, tt.found, found)
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	cfg := safeinput.Default()
	inputs := []string{"plain", "<script>alert('x')</script>", "a&b&c", "", "`rm -rf`"}

	for _, in := range inputs {
		once, _ := safeinput.Sanitize(in, cfg)
		twice, found := safeinput.Sanitize(once, cfg)
		assert.Equal(t, once, twice)
		assert.Empty(t, found)
	}
}

func TestSanitize_NilConfig(t *testing.T) {
	cleaned, found := safeinput.Sanitize("<b>", nil)
	assert.Equal(t, "<b>", cleaned)
	assert.Empty(t, found)
}
