package config

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/safeinput"
)

// Rules describes the sanitization rules taken from the environment.
type Rules struct {
	DefaultChars    bool     `env:"SAFEINPUT_DEFAULT_CHARS" envDefault:"true"`
	DefaultPatterns bool     `env:"SAFEINPUT_DEFAULT_PATTERNS" envDefault:"true"`
	ExtraChars      string   `env:"SAFEINPUT_EXTRA_CHARS"`
	ExtraPatterns   []string `env:"SAFEINPUT_EXTRA_PATTERNS" envSeparator:";;"`
	File            string   `env:"SAFEINPUT_RULES_FILE"`
}

// RulesFile is the YAML rules document:
//
//	defaults:
//	  chars: true
//	  patterns: true
//	forbidden_chars: "$%"
//	blocked_patterns:
//	  - (?i)password
//	  - (?i)\b(php|sh|bash|cmd|powershell)\b
//
// Values under defaults override the corresponding environment settings when present.
type RulesFile struct {
	Defaults struct {
		Chars    *bool `yaml:"chars"`
		Patterns *bool `yaml:"patterns"`
	} `yaml:"defaults"`
	ForbiddenChars  string   `yaml:"forbidden_chars"`
	BlockedPatterns []string `yaml:"blocked_patterns"`
}

// ParseRulesFile decodes a YAML rules document. Unknown keys are rejected; an empty document is valid.
func ParseRulesFile(r io.Reader) (RulesFile, error) {
	var rf RulesFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rf); err != nil && !errors.Is(err, io.EOF) {
		return RulesFile{}, errors.Join(ErrReadRulesFile, err)
	}
	return rf, nil
}

// ReadRulesFile opens path and parses it with ParseRulesFile.
func ReadRulesFile(path string) (RulesFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return RulesFile{}, errors.Join(ErrReadRulesFile, err)
	}
	defer f.Close()
	return ParseRulesFile(f)
}

// BuildSecurityConfig turns rules into an immutable safeinput.Config.
// Patterns from the environment are added before patterns from the rules file.
func BuildSecurityConfig(r Rules) (*safeinput.Config, error) {
	var rf RulesFile
	if r.File != "" {
		var err error
		if rf, err = ReadRulesFile(r.File); err != nil {
			return nil, err
		}
	}

	useChars, usePatterns := r.DefaultChars, r.DefaultPatterns
	if rf.Defaults.Chars != nil {
		useChars = *rf.Defaults.Chars
	}
	if rf.Defaults.Patterns != nil {
		usePatterns = *rf.Defaults.Patterns
	}

	b := safeinput.NewBuilder()
	if useChars {
		b.WithDefaultForbiddenChars()
	}
	if usePatterns {
		b.WithDefaultBlockedPatterns()
	}
	b.AddForbiddenChars(r.ExtraChars).AddForbiddenChars(rf.ForbiddenChars)

	for _, expr := range append(append([]string{}, r.ExtraPatterns...), rf.BlockedPatterns...) {
		if expr == "" {
			continue
		}
		if _, err := b.AddBlockedPattern(expr); err != nil {
			return nil, errors.Join(ErrBuildRules, err)
		}
	}

	return b.Build(), nil
}

// LoadSecurityConfig loads Rules from the environment and builds the Config.
func LoadSecurityConfig() (*safeinput.Config, error) {
	var r Rules
	if err := Load(&r); err != nil {
		return nil, err
	}
	return BuildSecurityConfig(r)
}
