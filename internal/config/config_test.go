package config_test

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/urisplit/internal/config"
	"github.com/ghettovoice/urisplit/internal/errorutil"
)

// Tests in this file change the process environment and must not run in parallel.

func TestLoad_Defaults(t *testing.T) {
	got, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load() error = %v, want nil", err)
	}
	if diff := cmp.Diff(got, config.Default()); diff != "" {
		t.Errorf("config.Load() = %+v, want %+v\ndiff (-got +want):\n%v", got, config.Default(), diff)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("URISPLIT_LOG_FORMAT", "json")
	t.Setenv("URISPLIT_LOG_LEVEL", "debug")
	t.Setenv("URISPLIT_CACHE_POLICY", "lru")
	t.Setenv("URISPLIT_CACHE_SIZE", "128")
	t.Setenv("URISPLIT_QUOTER_TABLES", "8")
	t.Setenv("URISPLIT_OUTPUT", "yaml")

	got, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load() error = %v, want nil", err)
	}
	want := config.Config{
		LogFormat:    "json",
		LogLevel:     slog.LevelDebug,
		CachePolicy:  config.CacheLRU,
		CacheSize:    128,
		QuoterTables: 8,
		Output:       config.OutputYAML,
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("config.Load() = %+v, want %+v\ndiff (-got +want):\n%v", got, want, diff)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"log format", "URISPLIT_LOG_FORMAT", "xml"},
		{"log level", "URISPLIT_LOG_LEVEL", "loud"},
		{"cache policy", "URISPLIT_CACHE_POLICY", "random"},
		{"cache size", "URISPLIT_CACHE_SIZE", "many"},
		{"output", "URISPLIT_OUTPUT", "toml"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Setenv(c.key, c.value)

			_, err := config.Load()
			if diff := cmp.Diff(err, errorutil.ErrInvalidArgument, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("config.Load() with %s=%q error = %v, want %v", c.key, c.value, err, errorutil.ErrInvalidArgument)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := config.Default()
	cfg.CachePolicy = config.CacheLRU
	cfg.CacheSize = 0
	cfg.Output = "toml"

	err := cfg.Validate()
	if !cmp.Equal(err, errorutil.ErrInvalidArgument, cmpopts.EquateErrors()) {
		t.Fatalf("cfg.Validate() error = %v, want %v", err, errorutil.ErrInvalidArgument)
	}
	if got := strings.Count(err.Error(), "\n  - "); got != 2 {
		t.Errorf("cfg.Validate() error = %q, want 2 joined errors, got %d", err, got)
	}

	cfg = config.Default()
	cfg.CacheSize = -1
	if err := cfg.Validate(); err != nil {
		t.Errorf("cfg.Validate() with unbounded clearing cache error = %v, want nil", err)
	}
}
