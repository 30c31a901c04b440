package uri

//go:generate go tool mockgen -typed -destination ../internal/testutil/cachemock/cache.go -package cachemock . Cache

import (
	"context"
	"log/slog"
	"sync/atomic"

	"braces.dev/errtrace"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ghettovoice/urisplit/internal/errorutil"
	"github.com/ghettovoice/urisplit/internal/log"
	"github.com/ghettovoice/urisplit/internal/syncutil"
	"github.com/ghettovoice/urisplit/internal/types"
)

// CacheKey identifies a decomposition request.
type CacheKey struct {
	Input          string
	DefaultScheme  string
	AllowFragments bool
	// Kind is the representation the input was given in.
	Kind types.Kind
}

// LogValue implements [slog.LogValuer].
func (k CacheKey) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("input", types.Input{Data: k.Input, Kind: k.Kind}),
		slog.String("default_scheme", k.DefaultScheme),
		slog.Bool("allow_fragments", k.AllowFragments),
	)
}

// Cache stores decomposition results.
// Implementations must be safe for concurrent use.
type Cache interface {
	Get(key CacheKey) (SplitResult, bool)
	Set(key CacheKey, res SplitResult)
	Clear()
	Len() int
}

// DefaultCacheSize is the capacity of a [ClearingCache] created without an explicit size.
const DefaultCacheSize = 20

// ClearingCacheOptions are options for [NewClearingCache].
type ClearingCacheOptions struct {
	// Size is the maximum number of entries.
	// Zero means [DefaultCacheSize], a negative value disables the bound.
	Size int
	// OnClear is called after the cache dropped its entries because of overflow.
	OnClear func()
	// Logger is used to log overflow clears.
	// If nil, [log.Default] is used.
	Logger *slog.Logger
}

func (o *ClearingCacheOptions) size() int {
	if o == nil || o.Size == 0 {
		return DefaultCacheSize
	}
	if o.Size < 0 {
		return 0
	}
	return o.Size
}

func (o *ClearingCacheOptions) onClear() func() {
	if o == nil {
		return nil
	}
	return o.OnClear
}

func (o *ClearingCacheOptions) log() *slog.Logger {
	if o == nil {
		return nil
	}
	return o.Logger
}

// CacheStats is a snapshot of [ClearingCache] counters.
type CacheStats struct {
	Hits   uint64 `json:"hits" yaml:"hits"`
	Misses uint64 `json:"misses" yaml:"misses"`
	// Clears counts overflow clears. Explicit [ClearingCache.Clear] calls are not counted.
	Clears uint64 `json:"clears" yaml:"clears"`
	Len    int    `json:"len" yaml:"len"`
}

// ClearingCache is a bounded [Cache] that discards all of its entries at once
// when a new entry arrives while it is full.
type ClearingCache struct {
	entries syncutil.RWMap[CacheKey, SplitResult]
	size    int
	onClear func()
	logger  *slog.Logger

	hits, misses, clears atomic.Uint64
}

// NewClearingCache creates a new [ClearingCache].
// Nil options are equivalent to zero options.
func NewClearingCache(opts *ClearingCacheOptions) *ClearingCache {
	return &ClearingCache{
		size:    opts.size(),
		onClear: opts.onClear(),
		logger:  opts.log(),
	}
}

func (c *ClearingCache) log() *slog.Logger {
	if c.logger == nil {
		return log.Default()
	}
	return c.logger
}

// Get returns the cached result for key.
func (c *ClearingCache) Get(key CacheKey) (SplitResult, bool) {
	res, ok := c.entries.Get(key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return res, ok
}

// Set stores res under key. If key is new and the cache is full,
// the cache is emptied first and the OnClear hook runs.
func (c *ClearingCache) Set(key CacheKey, res SplitResult) {
	if !c.entries.SetBounded(key, res, c.size) {
		return
	}

	c.clears.Add(1)
	c.log().LogAttrs(context.Background(), slog.LevelDebug, "decomposition cache cleared",
		slog.Int("size", c.size),
		slog.Any("key", key),
	)
	if c.onClear != nil {
		c.onClear()
	}
}

// Clear removes all entries.
func (c *ClearingCache) Clear() { c.entries.Clear() }

// Len returns the number of entries.
func (c *ClearingCache) Len() int { return c.entries.Len() }

// Stats returns the current counters.
func (c *ClearingCache) Stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Clears: c.clears.Load(),
		Len:    c.entries.Len(),
	}
}

// LRUCache is a bounded [Cache] that evicts the least recently used entry.
type LRUCache struct {
	entries *lru.Cache[CacheKey, SplitResult]
}

// NewLRUCache creates a new [LRUCache] holding at most size entries.
// It returns [errorutil.ErrInvalidArgument] when size is not positive.
func NewLRUCache(size int) (*LRUCache, error) {
	if size <= 0 {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("cache size must be positive, got %d", size))
	}
	entries, err := lru.New[CacheKey, SplitResult](size)
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
	}
	return &LRUCache{entries: entries}, nil
}

func (c *LRUCache) Get(key CacheKey) (SplitResult, bool) { return c.entries.Get(key) }

func (c *LRUCache) Set(key CacheKey, res SplitResult) { c.entries.Add(key, res) }

func (c *LRUCache) Clear() { c.entries.Purge() }

func (c *LRUCache) Len() int { return c.entries.Len() }
