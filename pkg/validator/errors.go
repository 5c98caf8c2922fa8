package validator

import "errors"

var (
	// ErrUnknownValidator is returned by Registry.Lookup for unregistered names.
	ErrUnknownValidator = errors.New("unknown validator")

	// ErrDuplicateValidator is returned when a name is registered twice.
	ErrDuplicateValidator = errors.New("validator already registered")
)
