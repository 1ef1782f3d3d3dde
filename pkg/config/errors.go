package config

import "errors"

var (
	// ErrNilPointer is returned when a nil destination is passed to a loader.
	ErrNilPointer = errors.New("config: destination must be a non-nil pointer")

	// ErrParsingEnv is returned when environment variables cannot be
	// parsed into the destination struct.
	ErrParsingEnv = errors.New("config: failed to parse environment")

	// ErrReadingFile is returned when the config file cannot be read.
	ErrReadingFile = errors.New("config: failed to read file")

	// ErrParsingFile is returned when the config file is not valid YAML
	// for the destination struct.
	ErrParsingFile = errors.New("config: failed to parse file")

	// ErrValidation is returned when the loaded struct fails validation.
	ErrValidation = errors.New("config: validation failed")
)
