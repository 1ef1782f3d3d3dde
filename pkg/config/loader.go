package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var (
	dotenvOnce sync.Once

	// validate is shared; validator.Validate caches struct metadata and
	// is safe for concurrent use.
	validate = validator.New(validator.WithRequiredStructEnabled())
)

// Load parses environment variables into the destination struct and
// validates the result. A .env file in the working directory is loaded
// once per process if present; a missing .env file is not an error.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingEnv, err)
	}

	return validateStruct(v)
}

// MustLoad works like Load but panics if loading fails. Intended for
// configurations the application cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: failed to load required configuration: %v", err))
	}
}

// LoadFile reads YAML defaults from path into the destination struct,
// then applies environment variables on top and validates the result.
// Environment values always override file values.
func LoadFile[T any](path string, v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrReadingFile, err)
	}
	if err := yaml.Unmarshal(raw, v); err != nil {
		return errors.Join(ErrParsingFile, err)
	}

	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingEnv, err)
	}

	return validateStruct(v)
}

func validateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		// InvalidValidationError means the destination is not a struct;
		// treat it as a caller bug surfaced through the same error path.
		return errors.Join(ErrValidation, err)
	}
	return nil
}
