// Package enrich swaps the placeholder payload of a resolved response for
// the live portfolio collection it describes.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/yungbote/portfolio-assistant/internal/domain/portfolio"
	"github.com/yungbote/portfolio-assistant/internal/pkg/ctxutil"
	"github.com/yungbote/portfolio-assistant/internal/pkg/logger"
)

const (
	DefaultTTL          = 5 * time.Minute
	defaultFetchTimeout = 15 * time.Second
)

// Outcomes reported to an Observer.
const (
	OutcomeHit   = "hit"
	OutcomeMiss  = "miss"
	OutcomeStale = "stale"
	OutcomeEmpty = "empty"
)

// Source fetches the current collection for one category.
type Source interface {
	Fetch(ctx context.Context, category string) (any, error)
}

type SourceFunc func(ctx context.Context, category string) (any, error)

func (f SourceFunc) Fetch(ctx context.Context, category string) (any, error) { return f(ctx, category) }

type Option func(*Cache)

func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

func WithObserver(fn func(category, outcome string)) Option {
	return func(c *Cache) { c.observe = fn }
}

// Cache is a read-through cache of portfolio collections with a fixed TTL.
// Concurrent refreshes of one category share a single fetch.
type Cache struct {
	store   Store
	source  Source
	ttl     time.Duration
	now     func() time.Time
	observe func(category, outcome string)
	group   singleflight.Group
	log     *logger.Logger
}

func NewCache(store Store, source Source, log *logger.Logger, opts ...Option) *Cache {
	if store == nil {
		store = NewMemoryStore()
	}
	if log == nil {
		log = logger.Nop()
	}
	c := &Cache{
		store:  store,
		source: source,
		ttl:    DefaultTTL,
		now:    time.Now,
		log:    log.With("service", "PortfolioCache"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cache) TTL() time.Duration { return c.ttl }

// Get returns the collection for category. A fresh entry is served as is.
// Otherwise the source is queried; if that fails the stale entry is served
// when one exists. ok is false only when nothing at all is available.
func (c *Cache) Get(ctx context.Context, category string) (json.RawMessage, bool) {
	cached, have, err := c.store.Get(ctx, category)
	if err != nil {
		c.log.Warn("portfolio cache read failed", "category", category, "error", err)
		have = false
	}
	if have && c.now().Sub(cached.RefreshedAt) < c.ttl {
		c.report(category, OutcomeHit)
		return cached.Value, true
	}

	v, err, _ := c.group.Do(category, func() (any, error) {
		return c.refresh(ctx, category)
	})
	if err == nil {
		c.report(category, OutcomeMiss)
		return v.(Entry).Value, true
	}

	c.log.Warn("portfolio refresh failed", "category", category, "stale", have, "error", err)
	if have {
		c.report(category, OutcomeStale)
		return cached.Value, true
	}
	c.report(category, OutcomeEmpty)
	return nil, false
}

func (c *Cache) refresh(ctx context.Context, category string) (Entry, error) {
	if c.source == nil {
		return Entry{}, fmt.Errorf("no portfolio source")
	}
	// Another caller may have refreshed while this one waited.
	if e, ok, err := c.store.Get(ctx, category); err == nil && ok && c.now().Sub(e.RefreshedAt) < c.ttl {
		return e, nil
	}
	fctx, cancel := context.WithTimeout(ctxutil.Detached(ctx), defaultFetchTimeout)
	defer cancel()

	data, err := c.source.Fetch(fctx, category)
	if err != nil {
		return Entry{}, err
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return Entry{}, fmt.Errorf("encode %s collection: %w", category, err)
	}
	e := Entry{Value: raw, RefreshedAt: c.now()}
	if err := c.store.Set(fctx, category, e); err != nil {
		c.log.Warn("portfolio cache write failed", "category", category, "error", err)
	}
	return e, nil
}

// Clear drops every entry. The next Get of each category refetches.
func (c *Cache) Clear(ctx context.Context) error {
	if err := c.store.Clear(ctx); err != nil {
		return err
	}
	c.log.Info("portfolio cache cleared")
	return nil
}

// Warm fetches every category concurrently. Categories that fail are logged
// and left to be fetched lazily.
func (c *Cache) Warm(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, cat := range portfolio.Categories {
		g.Go(func() error {
			if _, ok := c.Get(gctx, cat); !ok {
				c.log.Warn("portfolio cache warm-up missed", "category", cat)
			}
			return gctx.Err()
		})
	}
	return g.Wait()
}

func (c *Cache) report(category, outcome string) {
	if c.observe != nil {
		c.observe(category, outcome)
	}
}
