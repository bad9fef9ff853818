package repository

import (
	"context"
	"sync"
	"time"

	"guesthouse-ops-service/internal/domain/entity"
	"guesthouse-ops-service/internal/domain/repository"
	"guesthouse-ops-service/pkg/logger"

	"golang.org/x/sync/singleflight"
)

const (
	DefaultCacheFresh  = 5 * time.Minute
	DefaultCacheRetain = 30 * time.Minute
)

type cachedFeed struct {
	feed      *entity.ScheduleFeed
	fetchedAt time.Time
}

// CachedScheduleRepository wraps a ScheduleRepository with a time-boxed cache.
// Identical concurrent fetches share one upstream call.
type CachedScheduleRepository struct {
	next   repository.ScheduleRepository
	logger logger.Logger
	fresh  time.Duration
	retain time.Duration
	now    func() time.Time

	mu      sync.Mutex
	entries map[string]cachedFeed
	group   singleflight.Group
}

// NewCachedScheduleRepository creates a caching decorator around next
func NewCachedScheduleRepository(next repository.ScheduleRepository, fresh, retain time.Duration, logger logger.Logger) *CachedScheduleRepository {
	if fresh <= 0 {
		fresh = DefaultCacheFresh
	}
	if retain < fresh {
		retain = DefaultCacheRetain
	}
	return &CachedScheduleRepository{
		next:    next,
		logger:  logger,
		fresh:   fresh,
		retain:  retain,
		now:     time.Now,
		entries: make(map[string]cachedFeed),
	}
}

// FetchSchedule returns a fresh cached feed or fetches it from upstream
func (c *CachedScheduleRepository) FetchSchedule(ctx context.Context, startDate, endDate string) (*entity.ScheduleFeed, error) {
	key := startDate + "|" + endDate

	if feed, ok := c.lookup(key); ok {
		c.logger.Debug("Schedule cache hit", "key", key)
		return feed, nil
	}

	// the shared fetch outlives any single caller; each caller still honors its own ctx
	fetchCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (interface{}, error) {
		feed, err := c.next.FetchSchedule(fetchCtx, startDate, endDate)
		if err != nil {
			return nil, err
		}
		c.store(key, feed)
		return feed, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			c.logger.Debug("Schedule fetch shared", "key", key)
		}
		return res.Val.(*entity.ScheduleFeed), nil
	}
}

// Invalidate drops every cached feed
func (c *CachedScheduleRepository) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cachedFeed)
}

// Len returns the number of cached feeds
func (c *CachedScheduleRepository) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *CachedScheduleRepository) lookup(key string) (*entity.ScheduleFeed, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok || c.now().Sub(entry.fetchedAt) >= c.fresh {
		return nil, false
	}
	return entry.feed, true
}

func (c *CachedScheduleRepository) store(key string, feed *entity.ScheduleFeed) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for k, entry := range c.entries {
		if now.Sub(entry.fetchedAt) >= c.retain {
			delete(c.entries, k)
		}
	}
	c.entries[key] = cachedFeed{feed: feed, fetchedAt: now}
}
