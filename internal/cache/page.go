// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// page.go provides a Valkey-backed published-page HTML cache. Published
// landing pages are immutable until re-published, so serving /p/{slug}
// straight from Valkey skips the DB lookup on every hit.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// pageKeyPrefix is the Valkey key prefix for cached pages.
	pageKeyPrefix = "page:"

	// DefaultPageTTL is how long a published page stays cached.
	DefaultPageTTL = 5 * time.Minute
)

// PageCache manages published-page HTML caching in Valkey.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageCache creates a new page cache backed by the given Valkey client.
func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	if ttl == 0 {
		ttl = DefaultPageTTL
	}
	return &PageCache{client: client, ttl: ttl}
}

// Get retrieves cached HTML for a page slug. Returns nil, false on miss.
func (pc *PageCache) Get(ctx context.Context, slug string) ([]byte, bool) {
	val, err := pc.client.Get(ctx, pageKeyPrefix+slug).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("page cache get error", "slug", slug, "error", err)
		return nil, false
	}
	slog.Debug("page cache hit", "slug", slug)
	return val, true
}

// Set stores published HTML for a page slug with the configured TTL.
func (pc *PageCache) Set(ctx context.Context, slug string, html []byte) {
	if err := pc.client.Set(ctx, pageKeyPrefix+slug, html, pc.ttl).Err(); err != nil {
		slog.Warn("page cache set error", "slug", slug, "error", err)
	}
}

// InvalidatePage removes a single page from the cache by its slug.
// Called on re-publish, unpublish, and delete.
func (pc *PageCache) InvalidatePage(ctx context.Context, slug string) {
	if err := pc.client.Del(ctx, pageKeyPrefix+slug).Err(); err != nil {
		slog.Warn("page cache invalidate error", "slug", slug, "error", err)
	}
	slog.Debug("page cache invalidated", "slug", slug)
}

// InvalidateAll removes all cached pages by scanning for the prefix.
func (pc *PageCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := pc.client.Scan(ctx, cursor, pageKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("page cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := pc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("page cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("page cache fully cleared", "deleted", deleted)
	}
}
