// Package cli implements the urisplit command line interface.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ghettovoice/urisplit/escape"
	"github.com/ghettovoice/urisplit/internal/config"
	"github.com/ghettovoice/urisplit/internal/errorutil"
	"github.com/ghettovoice/urisplit/uri"
)

// Version is the command version, set at build time with -ldflags.
var Version = "dev"

type app struct {
	cfg     config.Config
	logger  *slog.Logger
	parser  *uri.Parser
	escapes *escape.Registry
}

type rootFlags struct {
	logFormat    string
	logLevel     string
	cachePolicy  string
	cacheSize    int
	quoterTables int
	output       string
}

// NewRootCommand creates the urisplit command with all subcommands.
func NewRootCommand() *cobra.Command {
	a := new(app)
	var f rootFlags

	root := &cobra.Command{
		Use:           "urisplit",
		Short:         "urisplit splits, joins and percent-encodes URIs.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return errtrace.Wrap(a.init(cmd, &f))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return errtrace.Wrap(cmd.Help())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.logFormat, "log-format", "", "log format: console, dev or json (env URISPLIT_LOG_FORMAT)")
	pf.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error (env URISPLIT_LOG_LEVEL)")
	pf.StringVar(&f.cachePolicy, "cache-policy", "", "decomposition cache: clear or lru (env URISPLIT_CACHE_POLICY)")
	pf.IntVar(&f.cacheSize, "cache-size", 0, "decomposition cache size (env URISPLIT_CACHE_SIZE)")
	pf.IntVar(&f.quoterTables, "quoter-tables", 0, "maximum number of quoting tables (env URISPLIT_QUOTER_TABLES)")
	pf.StringVarP(&f.output, "output", "o", "", "output format: text, json or yaml (env URISPLIT_OUTPUT)")

	root.AddCommand(
		newSplitCommand(a),
		newParseCommand(a),
		newJoinCommand(a),
		newDefragCommand(a),
		newQuoteCommand(a),
		newUnquoteCommand(a),
		newQueryCommand(a),
		newVersionCommand(),
	)
	return root
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return errtrace.Wrap(root.ExecuteContext(ctx))
}

func (a *app) init(cmd *cobra.Command, f *rootFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return errtrace.Wrap(err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-format") {
		cfg.LogFormat = f.logFormat
	}
	if flags.Changed("log-level") {
		if err := cfg.LogLevel.UnmarshalText([]byte(f.logLevel)); err != nil {
			return errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
		}
	}
	if flags.Changed("cache-policy") {
		cfg.CachePolicy = config.CachePolicy(f.cachePolicy)
	}
	if flags.Changed("cache-size") {
		cfg.CacheSize = f.cacheSize
	}
	if flags.Changed("quoter-tables") {
		cfg.QuoterTables = f.quoterTables
	}
	if flags.Changed("output") {
		cfg.Output = config.Output(f.output)
	}
	if err := cfg.Validate(); err != nil {
		return errtrace.Wrap(err)
	}

	a.cfg = cfg
	a.logger = cfg.Logger(cmd.ErrOrStderr())
	a.escapes = escape.NewRegistry(&escape.RegistryOptions{
		MaxTables: cfg.QuoterTables,
		Logger:    a.logger,
	})

	var cache uri.Cache
	switch cfg.CachePolicy {
	case config.CacheLRU:
		if cache, err = uri.NewLRUCache(cfg.CacheSize); err != nil {
			return errtrace.Wrap(err)
		}
	default:
		cache = uri.NewClearingCache(&uri.ClearingCacheOptions{
			Size:    cfg.CacheSize,
			OnClear: a.escapes.Clear,
			Logger:  a.logger,
		})
	}
	a.parser = uri.NewParser(&uri.ParserOptions{Cache: cache, Logger: a.logger})

	a.logger.LogAttrs(cmd.Context(), slog.LevelDebug, "configuration loaded",
		slog.String("command", cmd.Name()),
		slog.String("cache_policy", string(cfg.CachePolicy)),
		slog.Int("cache_size", cfg.CacheSize),
		slog.Int("quoter_tables", cfg.QuoterTables),
		slog.String("output", string(cfg.Output)),
	)
	return nil
}

// field is a named value of the text output.
type field struct {
	name  string
	value string
}

// render writes v to the command output in the configured format.
// The text format prints fields one per line.
func (a *app) render(cmd *cobra.Command, v any, fields ...field) error {
	w := cmd.OutOrStdout()
	switch a.cfg.Output {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errtrace.Wrap(enc.Encode(v))
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errtrace.Wrap(err)
		}
		return errtrace.Wrap(enc.Close())
	default:
		for _, f := range fields {
			if f.name == "" {
				if _, err := fmt.Fprintln(w, f.value); err != nil {
					return errtrace.Wrap(err)
				}
				continue
			}
			if _, err := fmt.Fprintf(w, "%s: %s\n", f.name, f.value); err != nil {
				return errtrace.Wrap(err)
			}
		}
		return nil
	}
}

// renderString writes a single string result.
func (a *app) renderString(cmd *cobra.Command, key, s string) error {
	return errtrace.Wrap(a.render(cmd, map[string]string{key: s}, field{value: s}))
}
