package escape

import (
	"context"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ghettovoice/urisplit/internal/grammar"
	"github.com/ghettovoice/urisplit/internal/log"
	"github.com/ghettovoice/urisplit/internal/util"
)

// Table maps every byte to its quoted form: the byte itself when it is
// always safe or declared safe, "%XX" otherwise.
type Table [256]string

// safeSet is a bitmask of the ASCII bytes declared safe.
type safeSet [2]uint64

// newSafeSet keeps the bytes of safe below 128 and drops the rest.
func newSafeSet(safe string) safeSet {
	var s safeSet
	for i := range len(safe) {
		if c := safe[i]; c < 128 {
			s[c>>6] |= 1 << (c & 63)
		}
	}
	return s
}

func (s safeSet) has(c byte) bool { return c < 128 && s[c>>6]&(1<<(c&63)) != 0 }

func (s safeSet) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	for c := range byte(128) {
		if s.has(c) {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

func newTable(safe safeSet) *Table {
	var t Table
	for i := range t {
		c := byte(i)
		if grammar.IsAlwaysSafe(c) || safe.has(c) {
			t[i] = string(rune(c))
		} else {
			t[i] = grammar.Percent(c)
		}
	}
	return &t
}

// DefaultMaxTables is the capacity of a [Registry] created without an explicit limit.
const DefaultMaxTables = 64

// RegistryOptions are options for [NewRegistry].
type RegistryOptions struct {
	// MaxTables is the maximum number of tables kept.
	// If not positive, [DefaultMaxTables] is used.
	MaxTables int
	// Logger is used to log table builds and evictions.
	// If nil, [log.Default] is used.
	Logger *slog.Logger
}

func (o *RegistryOptions) maxTables() int {
	if o == nil || o.MaxTables <= 0 {
		return DefaultMaxTables
	}
	return o.MaxTables
}

func (o *RegistryOptions) log() *slog.Logger {
	if o == nil {
		return nil
	}
	return o.Logger
}

// Registry holds quoting tables keyed by safe set, evicting the least recently used one.
// It is safe for concurrent use.
type Registry struct {
	tables *lru.Cache[safeSet, *Table]
	logger *slog.Logger
}

// NewRegistry creates a new [Registry].
func NewRegistry(opts *RegistryOptions) *Registry {
	tables, err := lru.New[safeSet, *Table](opts.maxTables())
	if err != nil {
		// size is always positive
		panic(err)
	}
	return &Registry{tables: tables, logger: opts.log()}
}

func (r *Registry) log() *slog.Logger {
	if r.logger == nil {
		return log.Default()
	}
	return r.logger
}

// Table returns the table for the safe set, building it on first use.
// Only ASCII bytes of safe are taken into account.
func (r *Registry) Table(safe string) *Table { return r.table(newSafeSet(safe)) }

func (r *Registry) table(safe safeSet) *Table {
	if t, ok := r.tables.Get(safe); ok {
		return t
	}

	t := newTable(safe)
	evicted := r.tables.Add(safe, t)
	r.log().LogAttrs(context.Background(), slog.LevelDebug, "quoting table built",
		slog.Any("safe", log.CalcValue(func() any { return safe.String() })),
		slog.Bool("evicted", evicted),
	)
	return t
}

// Len returns the number of tables held.
func (r *Registry) Len() int { return r.tables.Len() }

// Clear drops all tables.
func (r *Registry) Clear() { r.tables.Purge() }

var defRegistry = NewRegistry(nil)

// DefaultRegistry returns the registry used by package level functions.
func DefaultRegistry() *Registry { return defRegistry }

// ClearCache drops the tables of the default registry.
func ClearCache() { defRegistry.Clear() }
