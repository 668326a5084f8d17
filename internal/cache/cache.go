// Package cache stores computed KPI payloads behind dependency.ResultCache.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mamadou288/shop-api/internal/dependency"
	"github.com/mamadou288/shop-api/internal/entity"
	"github.com/mamadou288/shop-api/internal/period"
)

const (
	BackendBunt   = "bunt"
	BackendMemory = "memory"

	DefaultTTL       = 900 * time.Second
	DefaultKeyPrefix = "analytics"

	sweepInterval = time.Minute
)

// Config selects and tunes the result cache backend.
type Config struct {
	Backend   string        `mapstructure:"backend"`
	Path      string        `mapstructure:"path"`
	TTL       time.Duration `mapstructure:"ttl"`
	KeyPrefix string        `mapstructure:"key_prefix"`
}

// New opens the configured backend. An empty backend means buntdb.
func New(c Config) (dependency.ResultCache, error) {
	switch strings.ToLower(c.Backend) {
	case "", BackendBunt:
		bc, err := NewBuntCache(c.Path)
		if err != nil {
			return nil, fmt.Errorf("can't open bunt cache: %w", err)
		}
		return bc, nil
	case BackendMemory:
		mc := NewMemoryCache(time.Now)
		go mc.sweep(sweepInterval)
		return mc, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", c.Backend)
	}
}

// Family names a cached KPI payload.
type Family string

const (
	FamilyBusiness  Family = "business"
	FamilyProducts  Family = "products"
	FamilyUsers     Family = "users"
	FamilyDashboard Family = "dashboard"
)

// Entry is the cached envelope of a computed value.
type Entry[T any] struct {
	Value       T         `json:"value"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Facade wraps engine calls with a deterministic key and a fixed TTL.
type Facade struct {
	rc     dependency.ResultCache
	ttl    time.Duration
	prefix string
	now    func() time.Time
}

// NewFacade returns a Facade over rc. A nil clock means time.Now.
func NewFacade(rc dependency.ResultCache, c Config, now func() time.Time) *Facade {
	ttl := c.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	prefix := c.KeyPrefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	if now == nil {
		now = time.Now
	}
	return &Facade{
		rc:     rc,
		ttl:    ttl,
		prefix: prefix,
		now:    now,
	}
}

func (f *Facade) TTL() time.Duration {
	return f.ttl
}

// Key returns {prefix}:{family}:{start day}:{end day}. A nil range yields
// {prefix}:{family}:all for all-time families.
func (f *Facade) Key(family Family, tr *entity.TimeRange) string {
	if tr == nil {
		return fmt.Sprintf("%s:%s:all", f.prefix, family)
	}
	return fmt.Sprintf("%s:%s:%s:%s", f.prefix, family, period.DateKey(tr.From), period.DateKey(tr.To))
}

// Fetch returns the cached entry under key or computes, stores and returns a
// fresh one. Cache failures are logged and never fail the call; compute
// errors are returned and nothing is stored.
func Fetch[T any](ctx context.Context, f *Facade, key string, compute func(context.Context) (T, error)) (*Entry[T], error) {
	raw, ok, err := f.rc.Get(ctx, key)
	switch {
	case err != nil:
		slog.Default().ErrorContext(ctx, "can't read cached result",
			slog.String("key", key),
			slog.String("err", err.Error()),
		)
	case ok:
		var e Entry[T]
		if err := json.Unmarshal(raw, &e); err == nil {
			slog.Default().DebugContext(ctx, "cache hit", slog.String("key", key))
			return &e, nil
		}
		slog.Default().WarnContext(ctx, "discarding undecodable cached result",
			slog.String("key", key),
		)
	}

	v, err := compute(ctx)
	if err != nil {
		return nil, err
	}
	return Put(ctx, f, key, v), nil
}

// Refresh computes and stores a fresh entry under key whatever is cached.
func Refresh[T any](ctx context.Context, f *Facade, key string, compute func(context.Context) (T, error)) (*Entry[T], error) {
	v, err := compute(ctx)
	if err != nil {
		return nil, err
	}
	return Put(ctx, f, key, v), nil
}

// Put stores v under key stamped with the current time. Store failures are
// logged; the entry is returned either way.
func Put[T any](ctx context.Context, f *Facade, key string, v T) *Entry[T] {
	e := &Entry[T]{
		Value:       v,
		GeneratedAt: f.now(),
	}

	raw, err := json.Marshal(e)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't encode result",
			slog.String("key", key),
			slog.String("err", err.Error()),
		)
		return e
	}
	if err := f.rc.Set(ctx, key, raw, f.ttl); err != nil {
		slog.Default().ErrorContext(ctx, "can't store result",
			slog.String("key", key),
			slog.String("err", err.Error()),
		)
	}
	return e
}
