package cache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"eventdeck/application/ports"
	"eventdeck/domain/core/entities"
	"eventdeck/pkg/observability"
)

// EntityCache holds one collection entry per entity. Reads return the
// cached snapshot while the entry is fresh; a stale or empty entry
// triggers exactly one upstream fetch no matter how many readers arrive
// concurrently. The cache is an injected instance with session lifetime,
// not process-global state.
type EntityCache struct {
	events     *entry[entities.Event]
	categories *entry[entities.Category]
	users      *entry[entities.User]
}

// NewEntityCache creates a cache backed by the given store. A zero ttl
// means entries stay fresh until explicitly invalidated.
func NewEntityCache(store ports.RemoteStore, ttl time.Duration, logger *zap.Logger, metrics *observability.Metrics) *EntityCache {
	return &EntityCache{
		events:     newEntry("events", ttl, store.ListEvents, logger, metrics),
		categories: newEntry("categories", ttl, store.ListCategories, logger, metrics),
		users:      newEntry("users", ttl, store.ListUsers, logger, metrics),
	}
}

// Events returns the cached events collection, fetching if stale
func (c *EntityCache) Events(ctx context.Context) ([]entities.Event, error) {
	return c.events.get(ctx)
}

// Categories returns the cached categories collection, fetching if stale
func (c *EntityCache) Categories(ctx context.Context) ([]entities.Category, error) {
	return c.categories.get(ctx)
}

// Users returns the cached users collection, fetching if stale
func (c *EntityCache) Users(ctx context.Context) ([]entities.User, error) {
	return c.users.get(ctx)
}

// InvalidateEvents marks the events entry stale
func (c *EntityCache) InvalidateEvents() { c.events.invalidate() }

// InvalidateCategories marks the categories entry stale
func (c *EntityCache) InvalidateCategories() { c.categories.invalidate() }

// InvalidateUsers marks the users entry stale
func (c *EntityCache) InvalidateUsers() { c.users.invalidate() }

// PutEvent rewrites one cached event in place after a successful update,
// or appends it when the collection doesn't hold it yet. A no-op until
// the events entry has been populated.
func (c *EntityCache) PutEvent(event entities.Event) {
	c.events.put(event, func(existing entities.Event) bool {
		return existing.ID == event.ID
	})
}

// Refresh re-fetches every stale-or-expired entry; used by the periodic
// refresher to keep warm data warm without blocking readers.
func (c *EntityCache) Refresh(ctx context.Context) {
	c.events.refresh(ctx)
	c.categories.refresh(ctx)
	c.users.refresh(ctx)
}

// entry is one cached collection: an ordered snapshot, a staleness flag
// and the time of the last successful fetch.
type entry[T any] struct {
	name    string
	ttl     time.Duration
	fetch   func(context.Context) ([]T, error)
	logger  *zap.Logger
	metrics *observability.Metrics

	mu        sync.RWMutex
	items     []T
	populated bool
	stale     bool
	gen       uint64
	lastFetch time.Time

	group singleflight.Group
}

func newEntry[T any](name string, ttl time.Duration, fetch func(context.Context) ([]T, error), logger *zap.Logger, metrics *observability.Metrics) *entry[T] {
	return &entry[T]{
		name:    name,
		ttl:     ttl,
		fetch:   fetch,
		logger:  logger,
		metrics: metrics,
	}
}

// get returns a snapshot of the collection, fetching when the entry is
// stale. Concurrent fetches for the same entry collapse into a single
// upstream request; a caller whose context ends while waiting abandons
// the shared fetch, so a superseded view never receives a stale result.
func (e *entry[T]) get(ctx context.Context) ([]T, error) {
	e.mu.RLock()
	if e.freshLocked() {
		snapshot := e.snapshotLocked()
		e.mu.RUnlock()
		if e.metrics != nil {
			e.metrics.RecordCacheHit(e.name)
		}
		return snapshot, nil
	}
	gen := e.gen
	e.mu.RUnlock()

	if e.metrics != nil {
		e.metrics.RecordCacheMiss(e.name)
	}

	// The fetch outlives any single waiter: whoever arrives during the
	// flight shares its result, so it must not die with the first
	// caller's context.
	fetchCtx := context.WithoutCancel(ctx)

	ch := e.group.DoChan("collection", func() (interface{}, error) {
		items, err := e.fetch(fetchCtx)
		if err != nil {
			return nil, err
		}
		e.store(items, gen)
		return items, nil
	})

	select {
	case <-ctx.Done():
		e.logger.Debug("cache waiter canceled, discarding result",
			zap.String("entity", e.name),
		)
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		items := res.Val.([]T)
		snapshot := make([]T, len(items))
		copy(snapshot, items)
		return snapshot, nil
	}
}

func (e *entry[T]) freshLocked() bool {
	if !e.populated || e.stale {
		return false
	}
	if e.ttl > 0 && time.Since(e.lastFetch) >= e.ttl {
		return false
	}
	return true
}

func (e *entry[T]) snapshotLocked() []T {
	snapshot := make([]T, len(e.items))
	copy(snapshot, e.items)
	return snapshot
}

// store installs a fetched snapshot. gen is the generation observed when
// the fetch began; if an invalidation bumped it mid-flight the snapshot
// may predate the write that triggered it, so the entry stays stale and
// the next read fetches again.
func (e *entry[T]) store(items []T, gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.items = make([]T, len(items))
	copy(e.items, items)
	e.populated = true
	e.stale = e.gen != gen
	e.lastFetch = time.Now()
}

func (e *entry[T]) invalidate() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stale = true
	e.gen++
}

func (e *entry[T]) put(item T, match func(T) bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.populated {
		return
	}
	for i := range e.items {
		if match(e.items[i]) {
			e.items[i] = item
			return
		}
	}
	e.items = append(e.items, item)
}

func (e *entry[T]) refresh(ctx context.Context) {
	e.mu.RLock()
	fresh := e.freshLocked()
	e.mu.RUnlock()
	if fresh {
		return
	}

	if _, err := e.get(ctx); err != nil {
		e.logger.Warn("background refresh failed",
			zap.String("entity", e.name),
			zap.Error(err),
		)
	}
}
