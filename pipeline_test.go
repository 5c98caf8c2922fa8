package safeinput_test

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/safeinput"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type emailValidator struct{}

func (emailValidator) TargetType() string { return "email" }

func (v emailValidator) Validate(s string) (string, error) {
	if !emailRe.MatchString(s) {
		return "", safeinput.InvalidFormat(v.TargetType())
	}
	return s, nil
}

type maxLenValidator struct{ max int }

func (maxLenValidator) TargetType() string { return "length" }

func (v maxLenValidator) Validate(s string) (string, error) {
	if utf8.RuneCountInString(s) > v.max {
		return "", safeinput.Customf("input exceeds maximum length of %d characters", v.max)
	}
	return s, nil
}

// countingValidator records calls and always fails with a custom error.
type countingValidator struct{ calls atomic.Int32 }

func (*countingValidator) TargetType() string { return "counting" }

func (v *countingValidator) Validate(string) (string, error) {
	v.calls.Add(1)
	return "", safeinput.Custom("validator reached")
}

func TestSanitizeAndValidate(t *testing.T) {
	cfg := safeinput.Default()

	t.Run("accepts valid email", func(t *testing.T) {
		res, err := safeinput.SanitizeAndValidate("good@example.com", emailValidator{}, cfg)
		require.NoError(t, err)
		assert.Equal(t, "good@example.com", res.Cleaned())
		assert.Equal(t, "good@example.com", res.Original())
	})

	t.Run("keeps encoded original", func(t *testing.T) {
		res, err := safeinput.SanitizeAndValidate("good%40example.com", emailValidator{}, cfg)
		require.NoError(t, err)
		assert.Equal(t, "good@example.com", res.Cleaned())
		assert.Equal(t, "good%40example.com", res.Original())
	})

	t.Run("rejects encoded script tag", func(t *testing.T) {
		v := &countingValidator{}
		_, err := safeinput.SanitizeAndValidate("%3Cscript%3Ealert('x')%3C/script%3E", v, cfg)
		require.Error(t, err)
		assert.True(t, errors.Is(err, safeinput.ErrDangerousCharacters))

		ve, ok := safeinput.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, safeinput.KindDangerousCharacters, ve.Kind)
		assert.Equal(t, 6, ve.Count)
		assert.Equal(t, "'<', '>', ''', ''', '<', '>'", ve.Symbols)
		assert.Zero(t, v.calls.Load())
	})

	t.Run("character gate runs before pattern gate", func(t *testing.T) {
		v := &countingValidator{}
		_, err := safeinput.SanitizeAndValidate("DROP TABLE users;", v, cfg)
		require.Error(t, err)
		assert.True(t, errors.Is(err, safeinput.ErrDangerousCharacters))
		assert.Zero(t, v.calls.Load())
	})

	t.Run("rejects sql keywords without special characters", func(t *testing.T) {
		v := &countingValidator{}
		_, err := safeinput.SanitizeAndValidate("DROP TABLE users", v, cfg)
		require.Error(t, err)
		assert.True(t, errors.Is(err, safeinput.ErrBlockedPattern))

		ve, ok := safeinput.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, safeinput.GenericPatternMarker, ve.Pattern)
		assert.Zero(t, v.calls.Load())
	})

	t.Run("rejects double encoded payload", func(t *testing.T) {
		_, err := safeinput.SanitizeAndValidate("%253C%253E", emailValidator{}, cfg)
		assert.True(t, errors.Is(err, safeinput.ErrBlockedPattern))
	})

	t.Run("malformed escape is kept as literal text", func(t *testing.T) {
		res, err := safeinput.SanitizeAndValidate("100%zz", maxLenValidator{max: 10}, cfg)
		require.NoError(t, err)
		assert.Equal(t, "100%zz", res.Cleaned())
	})

	t.Run("malformed escape does not hide encoded markup", func(t *testing.T) {
		for _, input := range []string{"%3Cb%3E%", "%3Cscript%3E%zz", "%3Cb%3Ehi%3C/b%3E%"} {
			_, err := safeinput.SanitizeAndValidate(input, maxLenValidator{max: 100}, cfg)
			assert.True(t, errors.Is(err, safeinput.ErrDangerousCharacters), input)
		}
	})

	t.Run("validator length failure", func(t *testing.T) {
		_, err := safeinput.SanitizeAndValidate("AAAAAAAAAAAAAAAAAAAA", maxLenValidator{max: 10}, cfg)
		require.Error(t, err)
		assert.True(t, errors.Is(err, safeinput.ErrCustom))
		assert.EqualError(t, err, "custom validation failed: input exceeds maximum length of 10 characters")
	})

	t.Run("validator format failure", func(t *testing.T) {
		_, err := safeinput.SanitizeAndValidate("invalid-email", emailValidator{}, cfg)
		require.Error(t, err)
		assert.True(t, errors.Is(err, safeinput.ErrInvalidFormat))
		assert.EqualError(t, err, "input format validation failed for type email")
	})

	t.Run("validator error is propagated unchanged", func(t *testing.T) {
		sentinel := errors.New("lookup failed")
		v := safeinput.NewValidator("any", func(string) (string, error) { return "", sentinel })
		_, err := safeinput.SanitizeAndValidate("hello", v, cfg)
		assert.Equal(t, sentinel, err)
	})

	t.Run("typed result", func(t *testing.T) {
		v := safeinput.NewValidator("i32", func(s string) (int32, error) {
			n, err := strconv.ParseInt(s, 10, 32)
			if err != nil {
				return 0, safeinput.InvalidFormat("i32")
			}
			return int32(n), nil
		})

		res, err := safeinput.SanitizeAndValidate("42", v, cfg)
		require.NoError(t, err)
		assert.Equal(t, int32(42), res.Cleaned())

		_, err = safeinput.SanitizeAndValidate("9876543210", v, cfg)
		assert.True(t, errors.Is(err, safeinput.ErrInvalidFormat))
	})

	t.Run("empty config passes everything to the validator", func(t *testing.T) {
		v := &countingValidator{}
		_, err := safeinput.SanitizeAndValidate("<script>DROP TABLE x", v, safeinput.NewBuilder().Build())
		assert.True(t, errors.Is(err, safeinput.ErrCustom))
		assert.Equal(t, int32(1), v.calls.Load())
	})
}

type slowValidator struct{}

func (slowValidator) TargetType() string { return "slow" }

func (slowValidator) Validate(s string) (string, error) { return "sync:" + s, nil }

func (slowValidator) ValidateContext(ctx context.Context, s string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "ctx:" + s, nil
}

func TestSanitizeAndValidateContext(t *testing.T) {
	cfg := safeinput.Default()

	t.Run("uses context hook when implemented", func(t *testing.T) {
		res, err := safeinput.SanitizeAndValidateContext(context.Background(), "hello", slowValidator{}, cfg)
		require.NoError(t, err)
		assert.Equal(t, "ctx:hello", res.Cleaned())
	})

	t.Run("falls back to Validate", func(t *testing.T) {
		res, err := safeinput.SanitizeAndValidateContext(context.Background(), "good@example.com", emailValidator{}, cfg)
		require.NoError(t, err)
		assert.Equal(t, "good@example.com", res.Cleaned())
	})

	t.Run("cancellation comes from the validator", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := safeinput.SanitizeAndValidateContext(ctx, "hello", slowValidator{}, cfg)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("gates run before the validator", func(t *testing.T) {
		v := &countingValidator{}
		_, err := safeinput.SanitizeAndValidateContext(context.Background(), "<b>", v, cfg)
		assert.True(t, errors.Is(err, safeinput.ErrDangerousCharacters))
		_, err = safeinput.SanitizeAndValidateContext(context.Background(), "rm -rf /", v, cfg)
		assert.True(t, errors.Is(err, safeinput.ErrBlockedPattern))
		assert.Zero(t, v.calls.Load())
	})
}

func TestScreen(t *testing.T) {
	cfg := safeinput.Default()

	cleaned, err := safeinput.Screen("hello%20world", cfg)
	require.NoError(t, err)
	assert.Equal(t, "hello world", cleaned)

	_, err = safeinput.Screen("a&b", cfg)
	assert.True(t, errors.Is(err, safeinput.ErrDangerousCharacters))
}

func TestSanitizedInput_MarshalJSON(t *testing.T) {
	res, err := safeinput.SanitizeAndValidate("good%40example.com", emailValidator{}, safeinput.Default())
	require.NoError(t, err)

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"original":"good%40example.com","cleaned":"good@example.com"}`, string(data))
}

func TestSanitizeAndValidate_Concurrent(t *testing.T) {
	cfg := safeinput.Default()
	inputs := []string{"good@example.com", "<b>", "DROP TABLE users", "bad"}

	var wg sync.WaitGroup
	for i := range 64 {
		wg.Add(1)
		go func(in string) {
			defer wg.Done()
			_, _ = safeinput.SanitizeAndValidateContext(context.Background(), in, emailValidator{}, cfg)
		}(inputs[i%len(inputs)])
	}
	wg.Wait()
}
