// Package config loads eWordle settings from the environment.
//
// A `.env` file in the working directory is read first (development
// convenience); real environment variables take precedence.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/robalobadob/ewordle/internal/hashtag"
	"github.com/robalobadob/ewordle/internal/words"
)

// Config is the process-wide configuration.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// CorpusFile points at a `word,tier` file; empty uses the embedded corpus.
	CorpusFile  string   `env:"EWORDLE_CORPUS_FILE"`
	SourceNames []string `env:"EWORDLE_SOURCES" envSeparator:"," envDefault:"CET-4,CET-6,TOEFL,GRE,Oxford Dictionary,All"`

	MinLength     int    `env:"EWORDLE_MIN_LENGTH" envDefault:"5"`
	MaxLength     int    `env:"EWORDLE_MAX_LENGTH" envDefault:"8"`
	DefaultLength int    `env:"EWORDLE_DEFAULT_LENGTH" envDefault:"5"`
	DefaultSource string `env:"EWORDLE_DEFAULT_SOURCE" envDefault:"All"`

	DailySalt string `env:"DAILY_SALT" envDefault:"local_dev_salt"`
}

// Load reads .env (if present), parses the environment and validates it.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the ranges the game and hashtag codec depend on.
func (c Config) Validate() error {
	if len(c.SourceNames) == 0 {
		return errors.New("config: at least one word source is required")
	}
	if len(c.SourceNames) > hashtag.MaxSources {
		return fmt.Errorf("config: at most %d word sources are supported, got %d",
			hashtag.MaxSources, len(c.SourceNames))
	}
	if c.MinLength < 1 || c.MinLength > c.MaxLength {
		return fmt.Errorf("config: invalid word length range %d..%d", c.MinLength, c.MaxLength)
	}
	if c.MaxLength > hashtag.MaxWordLength {
		return fmt.Errorf("config: max word length %d exceeds %d", c.MaxLength, hashtag.MaxWordLength)
	}
	if c.DefaultLength < c.MinLength || c.DefaultLength > c.MaxLength {
		return fmt.Errorf("config: default length %d outside %d..%d",
			c.DefaultLength, c.MinLength, c.MaxLength)
	}
	if _, ok := c.Sources().Tier(c.DefaultSource); !ok {
		return fmt.Errorf("config: default source %q is not a configured source", c.DefaultSource)
	}
	return nil
}

// Sources returns the configured word sources, easiest first.
func (c Config) Sources() words.Sources {
	return words.Sources(c.SourceNames)
}
