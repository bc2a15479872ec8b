// Package config loads the timeago command configuration from the
// environment and optional .env files.
package config

import (
	"errors"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrLoadingEnvFile is returned when an explicitly requested .env file cannot be read
	ErrLoadingEnvFile = errors.New("failed to load env file")
)

// Config holds the settings of the timeago command.
type Config struct {
	// Locale activated on start, "auto" probes the environment.
	Locale string `env:"TIMEAGO_LOCALE" envDefault:"en"`
	// Directories holding locale resources, searched before the
	// bundled catalogues.
	Directories []string `env:"TIMEAGO_DIRECTORIES" envSeparator:":"`
	// Fallback locales consulted for keys a locale lacks.
	Fallback []string `env:"TIMEAGO_FALLBACK" envSeparator:"," envDefault:"en"`
	// AliasFile is a locale.alias file mapping names to locales.
	AliasFile string     `env:"TIMEAGO_LOCALE_ALIAS"`
	LogLevel  slog.Level `env:"TIMEAGO_LOG_LEVEL" envDefault:"warn"`
}

// Load reads the given .env files, or ./.env when it exists and no file
// is given, then parses the process environment.
func Load(files ...string) (Config, error) {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return Config{}, errors.Join(ErrLoadingEnvFile, err)
		}
	} else {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// Parse builds a Config from the given variables instead of the process
// environment.
func Parse(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}
