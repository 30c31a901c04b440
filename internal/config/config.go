// Package config loads the urisplit command configuration from the environment.
package config

import (
	"io"
	"log/slog"

	"braces.dev/errtrace"
	"github.com/caarlos0/env/v11"

	"github.com/ghettovoice/urisplit/internal/errorutil"
	"github.com/ghettovoice/urisplit/internal/log"
)

// CachePolicy selects the decomposition cache of the command parser.
type CachePolicy string

const (
	// CacheClear drops all entries at once when the cache is full.
	CacheClear CachePolicy = "clear"
	// CacheLRU evicts the least recently used entry.
	CacheLRU CachePolicy = "lru"
)

// Output is the result format of the command.
type Output string

const (
	OutputText Output = "text"
	OutputJSON Output = "json"
	OutputYAML Output = "yaml"
)

// Config is the command configuration.
type Config struct {
	LogFormat    string      `env:"URISPLIT_LOG_FORMAT" envDefault:"console" yaml:"log_format"`
	LogLevel     slog.Level  `env:"URISPLIT_LOG_LEVEL" envDefault:"info" yaml:"log_level"`
	CachePolicy  CachePolicy `env:"URISPLIT_CACHE_POLICY" envDefault:"clear" yaml:"cache_policy"`
	CacheSize    int         `env:"URISPLIT_CACHE_SIZE" envDefault:"20" yaml:"cache_size"`
	QuoterTables int         `env:"URISPLIT_QUOTER_TABLES" envDefault:"64" yaml:"quoter_tables"`
	Output       Output      `env:"URISPLIT_OUTPUT" envDefault:"text" yaml:"output"`
}

// Default returns the configuration used when the environment sets nothing.
func Default() Config {
	return Config{
		LogFormat:    string(log.FormatConsole),
		LogLevel:     slog.LevelInfo,
		CachePolicy:  CacheClear,
		CacheSize:    20,
		QuoterTables: 64,
		Output:       OutputText,
	}
}

// Load parses the configuration from the process environment and validates it.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errtrace.Wrap(err)
	}
	return cfg, nil
}

// Validate checks the configuration values.
// All problems are reported at once under [errorutil.ErrInvalidArgument].
func (c Config) Validate() error {
	var errs []error
	if _, err := log.ParseFormat(c.LogFormat); err != nil {
		errs = append(errs, err)
	}
	switch c.CachePolicy {
	case CacheClear:
	case CacheLRU:
		if c.CacheSize <= 0 {
			errs = append(errs, errorutil.NewInvalidArgumentError("lru cache size must be positive, got %d", c.CacheSize))
		}
	default:
		errs = append(errs, errorutil.NewInvalidArgumentError("unknown cache policy %q", c.CachePolicy))
	}
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		errs = append(errs, errorutil.NewInvalidArgumentError("unknown output %q", c.Output))
	}
	return errtrace.Wrap(errorutil.JoinPrefix("invalid config:", errs...))
}

// Logger creates a logger writing to w in the configured format.
func (c Config) Logger(w io.Writer) *slog.Logger {
	f, err := log.ParseFormat(c.LogFormat)
	if err != nil {
		f = log.FormatConsole
	}
	return log.New(w, f, c.LogLevel)
}
