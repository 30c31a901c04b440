package uri

//go:generate go tool errtrace -w .

import (
	"context"
	"log/slog"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urisplit/escape"
	"github.com/ghettovoice/urisplit/internal/grammar"
	"github.com/ghettovoice/urisplit/internal/log"
	"github.com/ghettovoice/urisplit/internal/types"
)

// ParserOptions are options for [NewParser].
type ParserOptions struct {
	// Cache stores decomposition results.
	// If nil, a [ClearingCache] of [DefaultCacheSize] entries is used.
	Cache Cache
	// Logger is used for debug messages.
	// If nil, [log.Default] is used.
	Logger *slog.Logger
}

func (o *ParserOptions) cache() Cache {
	if o == nil || o.Cache == nil {
		return NewClearingCache(&ClearingCacheOptions{Logger: o.log()})
	}
	return o.Cache
}

func (o *ParserOptions) log() *slog.Logger {
	if o == nil {
		return nil
	}
	return o.Logger
}

// Parser decomposes and resolves URIs, caching decompositions.
// It is safe for concurrent use when its cache is.
type Parser struct {
	cache  Cache
	logger *slog.Logger
}

// NewParser creates a new [Parser].
func NewParser(opts *ParserOptions) *Parser {
	return &Parser{
		cache:  opts.cache(),
		logger: opts.log(),
	}
}

func (p *Parser) log() *slog.Logger {
	if p.logger == nil {
		return log.Default()
	}
	return p.logger
}

// Split decomposes rawURL into five components. See [Split].
func (p *Parser) Split(rawURL string, opts *SplitOptions) (SplitResult, error) {
	return errtrace.Wrap2(p.split(types.InputOf(rawURL), opts))
}

// SplitBytes is like [Parser.Split] for a byte slice input.
func (p *Parser) SplitBytes(rawURL []byte, opts *SplitOptions) (SplitResult, error) {
	return errtrace.Wrap2(p.split(types.InputOf(rawURL), opts))
}

// Parse decomposes rawURL into six components. See [Parse].
func (p *Parser) Parse(rawURL string, opts *SplitOptions) (ParseResult, error) {
	return errtrace.Wrap2(p.parse(types.InputOf(rawURL), opts))
}

// ParseBytes is like [Parser.Parse] for a byte slice input.
func (p *Parser) ParseBytes(rawURL []byte, opts *SplitOptions) (ParseResult, error) {
	return errtrace.Wrap2(p.parse(types.InputOf(rawURL), opts))
}

// Join resolves ref against base. See [Join].
func (p *Parser) Join(base, ref string, opts *JoinOptions) (string, error) {
	return errtrace.Wrap2(p.join(types.InputOf(base), types.InputOf(ref), opts))
}

// Defrag removes the fragment from rawURL. See [Defrag].
func (p *Parser) Defrag(rawURL string) (DefragResult, error) {
	return errtrace.Wrap2(p.defrag(types.InputOf(rawURL)))
}

// ClearCache removes all cached decompositions of the parser.
func (p *Parser) ClearCache() { p.cache.Clear() }

func (p *Parser) split(in types.Input, opts *SplitOptions) (SplitResult, error) {
	key := CacheKey{
		Input:          in.Data,
		DefaultScheme:  opts.defScheme(),
		AllowFragments: opts.allowFragments(),
		Kind:           in.Kind,
	}
	if res, ok := p.cache.Get(key); ok {
		return res, nil
	}

	res, err := splitURL(key.Input, key.DefaultScheme, key.AllowFragments)
	if err != nil {
		p.log().LogAttrs(context.Background(), slog.LevelDebug, "failed to split URI",
			slog.Any("input", in),
			slog.Any("error", err),
		)
		return SplitResult{}, errtrace.Wrap(err)
	}
	p.cache.Set(key, res)
	return res, nil
}

func (p *Parser) parse(in types.Input, opts *SplitOptions) (ParseResult, error) {
	sr, err := p.split(in, opts)
	if err != nil {
		return ParseResult{}, errtrace.Wrap(err)
	}
	return parseSplit(sr), nil
}

func (p *Parser) defrag(in types.Input) (DefragResult, error) {
	if strings.IndexByte(in.Data, grammar.FragmentDelim) < 0 {
		return DefragResult{URL: in.Data}, nil
	}
	pr, err := p.parse(in, nil)
	if err != nil {
		return DefragResult{}, errtrace.Wrap(err)
	}
	frag := pr.Fragment
	pr.Fragment = ""
	return DefragResult{URL: pr.String(), Fragment: frag}, nil
}

var defParser = NewParser(&ParserOptions{
	Cache: NewClearingCache(&ClearingCacheOptions{OnClear: escape.ClearCache}),
})

// DefaultParser returns the parser used by package level functions.
func DefaultParser() *Parser { return defParser }

// ClearCache empties the decomposition cache of the default parser
// and the percent-encoding tables of the default escape registry.
func ClearCache() {
	defParser.ClearCache()
	escape.ClearCache()
}

// Split decomposes rawURL (string or []byte) into scheme, authority, path, query and fragment.
// Path parameters stay in the path. Results are cached by the default parser.
//
// It returns [ErrInvalidAuthority] if the authority has unbalanced brackets.
func Split[T ~string | ~[]byte](rawURL T, opts *SplitOptions) (SplitResult, error) {
	return errtrace.Wrap2(defParser.split(types.InputOf(rawURL), opts))
}

// Parse is like [Split] but also separates ';' parameters from the last path
// segment when the scheme uses them (see [UsesParams]).
func Parse[T ~string | ~[]byte](rawURL T, opts *SplitOptions) (ParseResult, error) {
	return errtrace.Wrap2(defParser.parse(types.InputOf(rawURL), opts))
}

// Join resolves the reference ref (string or []byte) against base.
//
// An empty base returns ref and an empty ref returns base.
// If ref has a scheme other than the scheme of base, or the scheme does not
// support relative references, ref is returned unchanged.
func Join[T ~string | ~[]byte](base, ref T, opts *JoinOptions) (T, error) {
	s, err := defParser.join(types.InputOf(base), types.InputOf(ref), opts)
	if err != nil {
		var zero T
		return zero, errtrace.Wrap(err)
	}
	return types.Output[T](s), nil
}

// Defrag removes the fragment from rawURL (string or []byte).
// A URL without '#' is returned unchanged with an empty fragment.
func Defrag[T ~string | ~[]byte](rawURL T) (DefragResult, error) {
	return errtrace.Wrap2(defParser.defrag(types.InputOf(rawURL)))
}
