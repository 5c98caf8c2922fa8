package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrConfigNotLoaded is returned when attempting to access a config that hasn't been loaded
	ErrConfigNotLoaded = errors.New("configuration has not been loaded")

	// ErrNilPointer is returned when a nil pointer is provided to Load
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrReadRulesFile is returned when the rules file cannot be opened or decoded.
	ErrReadRulesFile = errors.New("failed to read rules file")

	// ErrBuildRules is returned when the configured rules do not form a valid safeinput.Config.
	ErrBuildRules = errors.New("failed to build sanitization rules")
)
