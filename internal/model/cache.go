package model

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/ledren/scoutbook/internal/logger"
	"github.com/ledren/scoutbook/internal/models"
)

// Cache memoizes model builds by their parameters. Entries younger than the
// TTL are served as hits; anything older is rebuilt and replaced. Concurrent
// misses for the same key share a single build through singleflight instead
// of racing duplicate rebuilds.
type Cache struct {
	builder *Builder
	ttl     time.Duration

	mu      sync.Mutex
	entries map[string]*cacheEntry
	group   singleflight.Group

	// now is swappable in tests.
	now func() time.Time
}

type cacheEntry struct {
	model    *models.OpponentModel
	storedAt time.Time
}

// NewCache creates a Cache around the given builder.
func NewCache(builder *Builder, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Cache{
		builder: builder,
		ttl:     ttl,
		entries: map[string]*cacheEntry{},
		now:     time.Now,
	}
}

// Get returns the model for the given parameters, building it on a miss.
// CacheInfo is diagnostic metadata; callers must not use it for
// correctness.
func (c *Cache) Get(ctx context.Context, params BuildParams) (*models.OpponentModel, models.CacheInfo, error) {
	log := logger.FromContext(ctx).WithPrefix("model-cache")
	key := cacheKey(params)

	c.mu.Lock()
	entry, ok := c.entries[key]
	c.mu.Unlock()

	if ok {
		age := c.now().Sub(entry.storedAt)
		if age < c.ttl {
			log.Debug("hit: key=%s, age=%s", key, age)
			return entry.model, models.CacheInfo{
				Hit:           true,
				Age:           age,
				GamesUsed:     entry.model.GamesUsed,
				BuildDuration: entry.model.BuildDuration,
			}, nil
		}
		log.Debug("expired: key=%s, age=%s", key, age)
	}

	v, err, shared := c.group.Do(key, func() (any, error) {
		m, err := c.builder.Build(ctx, params)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = &cacheEntry{model: m, storedAt: c.now()}
		c.mu.Unlock()
		return m, nil
	})
	if err != nil {
		return nil, models.CacheInfo{}, err
	}

	m := v.(*models.OpponentModel)
	log.Debug("miss: key=%s, games=%d, shared=%t", key, m.GamesUsed, shared)
	return m, models.CacheInfo{
		Hit:           false,
		GamesUsed:     m.GamesUsed,
		BuildDuration: m.BuildDuration,
	}, nil
}

// Invalidate drops the entry for the given parameters, forcing the next Get
// to rebuild.
func (c *Cache) Invalidate(params BuildParams) {
	c.mu.Lock()
	delete(c.entries, cacheKey(params))
	c.mu.Unlock()
}

func cacheKey(params BuildParams) string {
	speeds := append([]string(nil), params.Speeds...)
	sort.Strings(speeds)

	since, until := "", ""
	if params.Since != nil {
		since = params.Since.UTC().Format(time.RFC3339)
	}
	if params.Until != nil {
		until = params.Until.UTC().Format(time.RFC3339)
	}

	return fmt.Sprintf("%d|%s|%s|%s|%s|%s|%s|%d",
		params.Identity.UserID,
		params.Identity.Platform,
		strings.ToLower(params.Identity.Username),
		strings.Join(speeds, ","),
		params.Rated,
		since,
		until,
		params.MaxGames,
	)
}
