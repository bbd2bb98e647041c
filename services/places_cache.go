package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/mmcloughlin/geohash"
)

const (
	placesCacheKeyPrefix = "places:nearby:"

	// precision 7 cells are roughly 150m x 150m
	placesCacheGeohashPrecision = 7

	memoryCacheSweepThreshold = 1024
)

// PlacesCache stores raw nearby search responses.
type PlacesCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, body []byte, ttl time.Duration) error
}

// NearbyCacheKey buckets a query by geohash cell so that nearby positions share an entry.
func NearbyCacheKey(q NearbyQuery) string {
	cell := geohash.EncodeWithPrecision(q.Location.Lat, q.Location.Lng, placesCacheGeohashPrecision)
	return fmt.Sprintf("%s%s:%d:%s:%s", placesCacheKeyPrefix, cell, q.Radius, q.Type, strings.ToLower(strings.TrimSpace(q.Keyword)))
}

type redisPlacesCache struct {
	client *redis.Client
}

// NewRedisPlacesCache returns a PlacesCache backed by Redis.
func NewRedisPlacesCache(client *redis.Client) PlacesCache {
	return &redisPlacesCache{client: client}
}

func (c *redisPlacesCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}
	return data, true, nil
}

func (c *redisPlacesCache) Set(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, body, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

type memoryEntry struct {
	body    []byte
	expires time.Time
}

type memoryPlacesCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryPlacesCache returns an in-process PlacesCache with per-entry expiry.
func NewMemoryPlacesCache() PlacesCache {
	return &memoryPlacesCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (c *memoryPlacesCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	if c.now().After(entry.expires) {
		delete(c.entries, key)
		return nil, false, nil
	}
	return entry.body, true, nil
}

func (c *memoryPlacesCache) Set(_ context.Context, key string, body []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if len(c.entries) >= memoryCacheSweepThreshold {
		for k, e := range c.entries {
			if now.After(e.expires) {
				delete(c.entries, k)
			}
		}
	}

	stored := make([]byte, len(body))
	copy(stored, body)
	c.entries[key] = memoryEntry{body: stored, expires: now.Add(ttl)}
	return nil
}
