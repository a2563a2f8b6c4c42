// Package cache provides a redis read-through cache for event lookups
// by slug. Writes invalidate; the TTL bounds staleness for anything that
// slips past invalidation.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"event-system/models"
)

type EventCache struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewEventCache(redisClient *redis.Client, ttl time.Duration) *EventCache {
	return &EventCache{Redis: redisClient, TTL: ttl}
}

func slugKey(slug string) string {
	return fmt.Sprintf("event:slug:%s", slug)
}

// Get returns the cached event for a slug, or nil on miss. Cache errors
// degrade to a miss; the store remains the source of truth.
func (c *EventCache) Get(ctx context.Context, slug string) *models.Event {
	data, err := c.Redis.Get(ctx, slugKey(slug)).Result()
	if err != nil {
		return nil
	}

	var event models.Event
	if err := json.Unmarshal([]byte(data), &event); err != nil {
		return nil
	}

	return &event
}

func (c *EventCache) Set(ctx context.Context, event *models.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return c.Redis.Set(ctx, slugKey(event.Slug), data, c.TTL).Err()
}

func (c *EventCache) Invalidate(ctx context.Context, slug string) error {
	if slug == "" {
		return nil
	}
	return c.Redis.Del(ctx, slugKey(slug)).Err()
}
