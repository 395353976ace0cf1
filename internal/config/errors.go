package config

import "errors"

// Errors returned by [GetStructuredConfig] when the merged configuration is
// incomplete or invalid.
var (
	// ErrEmptyEnvironment indicates that no environment name was resolved.
	ErrEmptyEnvironment = errors.New("environment is not set")
	// ErrInvalidOutput indicates an output format other than json or yaml.
	ErrInvalidOutput = errors.New("invalid output format")
	// ErrInvalidLogLevel indicates a log level zerolog does not know.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrUnexpectedArgs indicates positional arguments after the flags.
	ErrUnexpectedArgs = errors.New("unexpected arguments")
)
