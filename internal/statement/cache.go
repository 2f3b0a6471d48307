package statement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheVersionKey = "statements:version"

// Cache wraps Redis-backed caching of statement view models with a version
// counter. Bump invalidates everything at once; ledger writers call it after
// posting. A nil cache (or nil client) degrades to computing every time.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache instantiates the cache helper.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// BuildKey composes a cache key from the given parts and the current version.
func (c *Cache) BuildKey(ctx context.Context, parts ...string) (string, error) {
	joined := strings.Join(parts, ":")
	if c == nil || c.client == nil {
		return joined, nil
	}
	ver, err := c.version(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%d", joined, ver), nil
}

func (c *Cache) version(ctx context.Context) (int64, error) {
	ver, err := c.client.Get(ctx, cacheVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		if err := c.client.Set(ctx, cacheVersionKey, 1, 0).Err(); err != nil {
			return 0, err
		}
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return ver, nil
}

// Bump advances the cache version, invalidating all cached statements.
func (c *Cache) Bump(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Incr(ctx, cacheVersionKey).Err()
}

// FetchJSON loads a cached value into dest or populates the cache from the
// loader. Cache failures fall through to the loader; a statement request must
// never fail because Redis is away. An empty key skips the cache for this
// call, and a corrupt cached entry is recomputed and overwritten.
func (c *Cache) FetchJSON(ctx context.Context, key string, dest any, loader func(context.Context) (any, error)) error {
	if loader == nil {
		return errors.New("statement: cache loader required")
	}
	usable := c != nil && c.client != nil && key != ""
	if usable {
		raw, err := c.client.Get(ctx, key).Bytes()
		if err == nil {
			if err := json.Unmarshal(raw, dest); err == nil {
				return nil
			}
		}
	}
	value, err := loader(ctx)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if usable {
		_ = c.client.Set(ctx, key, raw, c.ttl).Err()
	}
	return json.Unmarshal(raw, dest)
}
