// Package config loads process configuration from the environment and builds
// the safeinput rule set.
//
// Load parses environment variables into any struct using
// `github.com/caarlos0/env/v11` tags, after reading a `.env` file once via
// `github.com/joho/godotenv`. Each configuration type is parsed once and cached;
// ResetCache clears the cache in tests.
//
// # Sanitization rules
//
// Rules come from two sources that are merged:
//
//   - Environment: SAFEINPUT_DEFAULT_CHARS and SAFEINPUT_DEFAULT_PATTERNS toggle the
//     built-in sets (both default to true), SAFEINPUT_EXTRA_CHARS adds characters,
//     SAFEINPUT_EXTRA_PATTERNS adds expressions separated by ";;".
//   - An optional YAML file named by SAFEINPUT_RULES_FILE (see RulesFile).
//
// BuildSecurityConfig compiles everything into a *safeinput.Config. An invalid
// expression fails the build with ErrBuildRules, so bad rules stop startup rather
// than surfacing per request.
//
// # Usage
//
//	cfg, err := config.LoadSecurityConfig()
//	if err != nil {
//		log.Fatal(err)
//	}
//	res, err := safeinput.SanitizeAndValidate(input, validator.Email{}, cfg)
package config
