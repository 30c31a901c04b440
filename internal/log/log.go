// Package log provides logging utilities.
package log

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/urisplit/internal/errorutil"
	"github.com/ghettovoice/urisplit/internal/types"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(in types.Input) slog.Value {
		return slog.GroupValue(
			slog.String("kind", in.Kind.String()),
			slog.String("data", in.Data),
		)
	}),
)

// Format selects the output handler of a logger.
type Format string

const (
	// FormatConsole writes colored human readable lines.
	FormatConsole Format = "console"
	// FormatDev writes verbose developer output with sorted keys.
	FormatDev Format = "dev"
	// FormatJSON writes one JSON object per record.
	FormatJSON Format = "json"
)

// ParseFormat parses a log format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatConsole, FormatDev, FormatJSON:
		return f, nil
	case "":
		return FormatConsole, nil
	default:
		return "", errorutil.NewInvalidArgumentError("unknown log format %q", s)
	}
}

// New creates a logger writing to w in the given format.
func New(w io.Writer, format Format, lvl slog.Leveler) *slog.Logger {
	var h slog.Handler
	switch format {
	case FormatDev:
		h = devslog.NewHandler(w, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: true,
				Level:     lvl,
			},
			SortKeys:   true,
			TimeFormat: time.RFC3339Nano,
		})
	case FormatJSON:
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	default:
		h = console.NewHandler(w, &console.HandlerOptions{
			Level:      lvl,
			TimeFormat: time.RFC3339Nano,
		})
	}
	return slog.New(newHandler(h))
}

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

// Default returns the process-wide logger set with [slog.SetDefault].
func Default() *slog.Logger { return slog.Default() }

type calcValue struct{ fn func() any }

func (v calcValue) LogValue() slog.Value {
	cv := v.fn()
	switch cv := cv.(type) {
	case slog.Value:
		return cv
	default:
		return slog.AnyValue(cv)
	}
}

// CalcValue returns a value logger that computes a value using a fn.
// The function runs only when the record is actually handled.
func CalcValue(fn func() any) slog.LogValuer { return calcValue{fn} }
