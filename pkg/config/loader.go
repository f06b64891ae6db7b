package config

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/cipherkit/pkg/api"
	"github.com/dmitrymomot/cipherkit/pkg/lexicon"
)

// Lexicon source kinds accepted by CAESAR_LEXICON_SOURCE.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourceRedis    = "redis"
	SourceS3       = "s3"
	SourcePostgres = "postgres"
)

var sources = []string{SourceEmbedded, SourceFile, SourceRedis, SourceS3, SourcePostgres}

// Config is the complete runtime configuration of the caesar tool.
type Config struct {
	Env       string `env:"CAESAR_ENV" envDefault:"development"`
	LogLevel  string `env:"CAESAR_LOG_LEVEL"`  // Empty means info for serve and warn for one-shot commands.
	LogFormat string `env:"CAESAR_LOG_FORMAT"` // json, text or pretty; empty picks one from Env.

	DefaultThreshold   float64 `env:"CAESAR_DEFAULT_THRESHOLD" envDefault:"0.5"`
	ValidatorCacheSize int     `env:"CAESAR_VALIDATOR_CACHE_SIZE" envDefault:"4"`
	FrequencyTable     string  `env:"CAESAR_FREQUENCY_TABLE"` // Optional YAML file replacing the English table.

	LexiconSource string `env:"CAESAR_LEXICON_SOURCE" envDefault:"embedded"`
	LexiconPath   string `env:"CAESAR_LEXICON_PATH"`

	Redis    lexicon.RedisConfig
	S3       lexicon.S3Config
	Postgres lexicon.PostgresConfig
	HTTP     api.Config
}

// Load reads the given .env files (or ".env" when none are given), then parses
// the process environment into a Config and validates it. A missing default
// .env file is not an error; a missing explicitly named one is.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		// The default file is optional.
		_ = godotenv.Load()
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, errors.Join(ErrLoadingEnvFile, err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, cfg.Validate()
}

// Parse builds a Config from an explicit variable map instead of the process
// environment.
func Parse(vars map[string]string) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Environment: vars})
	if err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks values that env tags cannot express.
func (c Config) Validate() error {
	var errs []error

	switch c.LogFormat {
	case "", "json", "text", "pretty":
	default:
		errs = append(errs, fmt.Errorf("CAESAR_LOG_FORMAT %q is not one of json, text, pretty", c.LogFormat))
	}
	if math.IsNaN(c.DefaultThreshold) || c.DefaultThreshold < 0 || c.DefaultThreshold > 1 {
		errs = append(errs, fmt.Errorf("CAESAR_DEFAULT_THRESHOLD %v must be within [0, 1]", c.DefaultThreshold))
	}
	if c.ValidatorCacheSize < 1 {
		errs = append(errs, fmt.Errorf("CAESAR_VALIDATOR_CACHE_SIZE %d must be positive", c.ValidatorCacheSize))
	}

	if !slices.Contains(sources, c.LexiconSource) {
		errs = append(errs, fmt.Errorf("CAESAR_LEXICON_SOURCE %q is not one of %v", c.LexiconSource, sources))
	}
	switch c.LexiconSource {
	case SourceFile:
		if c.LexiconPath == "" {
			errs = append(errs, errors.New("CAESAR_LEXICON_PATH is required for the file source"))
		}
	case SourceS3:
		if c.S3.Bucket == "" {
			errs = append(errs, errors.New("S3_BUCKET is required for the s3 source"))
		}
	case SourcePostgres:
		if c.Postgres.ConnectionString == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres source"))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
}
