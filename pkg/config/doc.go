// Package config loads configuration structs from the environment,
// with optional YAML file defaults and struct validation.
//
// Values are resolved in order: YAML file (when LoadFile is used),
// then environment variables, so the environment always wins. A .env
// file in the working directory is loaded once, if present. After
// parsing, the struct is validated with go-playground/validator so
// out-of-range values fail at load time rather than at first use.
//
// # Basic Usage
//
//	type Config struct {
//		MaxVisible int           `env:"TOAST_MAX_VISIBLE" envDefault:"5" validate:"min=1"`
//		Duration   time.Duration `env:"TOAST_DURATION" envDefault:"5s"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
//
// # File Defaults
//
//	var cfg Config
//	err := config.LoadFile("toastkit.yaml", &cfg)
package config
