package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/safeinput"
	"github.com/dmitrymomot/safeinput/pkg/config"
)

func writeRulesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseRulesFile(t *testing.T) {
	t.Run("full document", func(t *testing.T) {
		rf, err := config.ParseRulesFile(strings.NewReader(`
defaults:
  chars: false
forbidden_chars: "$%"
blocked_patterns:
  - (?i)password
`))
		require.NoError(t, err)
		require.NotNil(t, rf.Defaults.Chars)
		assert.False(t, *rf.Defaults.Chars)
		assert.Nil(t, rf.Defaults.Patterns)
		assert.Equal(t, "$%", rf.ForbiddenChars)
		assert.Equal(t, []string{"(?i)password"}, rf.BlockedPatterns)
	})

	t.Run("empty document", func(t *testing.T) {
		rf, err := config.ParseRulesFile(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, rf.BlockedPatterns)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := config.ParseRulesFile(strings.NewReader("forbiden_chars: x\n"))
		assert.ErrorIs(t, err, config.ErrReadRulesFile)
	})
}

func TestBuildSecurityConfig(t *testing.T) {
	t.Run("defaults only", func(t *testing.T) {
		cfg, err := config.BuildSecurityConfig(config.Rules{DefaultChars: true, DefaultPatterns: true})
		require.NoError(t, err)
		assert.Equal(t, safeinput.Default().ForbiddenChars(), cfg.ForbiddenChars())
		assert.Equal(t, safeinput.Default().BlockedPatterns(), cfg.BlockedPatterns())
	})

	t.Run("extras from environment", func(t *testing.T) {
		cfg, err := config.BuildSecurityConfig(config.Rules{
			ExtraChars:    "$",
			ExtraPatterns: []string{`(?i)password`, ""},
		})
		require.NoError(t, err)
		assert.True(t, cfg.IsCharForbidden('$'))
		assert.False(t, cfg.IsCharForbidden('<'))
		assert.Equal(t, []string{`(?i)password`}, cfg.BlockedPatterns())
	})

	t.Run("file overrides defaults and appends rules", func(t *testing.T) {
		path := writeRulesFile(t, `
defaults:
  chars: false
forbidden_chars: "#"
blocked_patterns:
  - (?i)\b(php|bash)\b
`)
		cfg, err := config.BuildSecurityConfig(config.Rules{
			DefaultChars:    true,
			DefaultPatterns: true,
			ExtraPatterns:   []string{`foo`},
			File:            path,
		})
		require.NoError(t, err)
		assert.False(t, cfg.IsCharForbidden('<'))
		assert.True(t, cfg.IsCharForbidden('#'))

		patterns := cfg.BlockedPatterns()
		require.Len(t, patterns, 7)
		assert.Equal(t, "foo", patterns[5])
		assert.Equal(t, `(?i)\b(php|bash)\b`, patterns[6])
	})

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := config.BuildSecurityConfig(config.Rules{ExtraPatterns: []string{`(`}})
		assert.True(t, errors.Is(err, config.ErrBuildRules))
		assert.True(t, errors.Is(err, safeinput.ErrInvalidPattern))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.BuildSecurityConfig(config.Rules{File: filepath.Join(t.TempDir(), "missing.yaml")})
		assert.ErrorIs(t, err, config.ErrReadRulesFile)
	})
}

func TestLoadSecurityConfig(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	t.Setenv("SAFEINPUT_DEFAULT_CHARS", "false")
	t.Setenv("SAFEINPUT_DEFAULT_PATTERNS", "true")
	t.Setenv("SAFEINPUT_EXTRA_CHARS", "$")
	t.Setenv("SAFEINPUT_EXTRA_PATTERNS", "(?i)password;;(?i)secret")
	t.Setenv("SAFEINPUT_RULES_FILE", "")

	cfg, err := config.LoadSecurityConfig()
	require.NoError(t, err)
	assert.Equal(t, []rune{'$'}, cfg.ForbiddenChars())
	assert.Len(t, cfg.BlockedPatterns(), 7)
	assert.True(t, cfg.HasBlockedPattern("my Secret"))
}
