// Copyright (c) 2026 Clipstream. All rights reserved.

package video

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/clipstream/clipstream/internal/platform/constants"
)

// listCacheTTL keeps catalog listings briefly warm; mutations invalidate
// before it expires in the common case.
const listCacheTTL = 30 * time.Second

// RedisListCache implements [ListCache] on top of go-redis.
//
// Keys follow the taxonomy "video:list:<category>:<limit>". All failures
// are logged and swallowed: the cache must never break a read path.
type RedisListCache struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisListCache constructs the production listing cache.
func NewRedisListCache(client *redis.Client, logger *slog.Logger) *RedisListCache {
	return &RedisListCache{client: client, logger: logger}
}

// Get returns the cached listing for (category, limit) if present and fresh.
func (cache *RedisListCache) Get(context context.Context, category string, limit int) ([]Video, bool) {
	payload, err := cache.client.Get(context, cache.key(category, limit)).Bytes()
	if err != nil {
		if err != redis.Nil {
			cache.logger.Warn("video_cache_get_failed", slog.Any("error", err))
		}
		return nil, false
	}

	var videos []Video
	if err := json.Unmarshal(payload, &videos); err != nil {
		cache.logger.Warn("video_cache_decode_failed", slog.Any("error", err))
		return nil, false
	}

	return videos, true
}

// Set stores a listing with the cache TTL. Best effort.
func (cache *RedisListCache) Set(context context.Context, category string, limit int, videos []Video) {
	payload, err := json.Marshal(videos)
	if err != nil {
		cache.logger.Warn("video_cache_encode_failed", slog.Any("error", err))
		return
	}

	if err := cache.client.Set(context, cache.key(category, limit), payload, listCacheTTL).Err(); err != nil {
		cache.logger.Warn("video_cache_set_failed", slog.Any("error", err))
	}
}

// Invalidate drops every cached listing via a prefix scan.
func (cache *RedisListCache) Invalidate(context context.Context) {
	iterator := cache.client.Scan(context, 0, constants.RedisPrefixVideoList+"*", 100).Iterator()

	keys := []string{}
	for iterator.Next(context) {
		keys = append(keys, iterator.Val())
	}
	if err := iterator.Err(); err != nil {
		cache.logger.Warn("video_cache_scan_failed", slog.Any("error", err))
		return
	}

	if len(keys) == 0 {
		return
	}

	if err := cache.client.Del(context, keys...).Err(); err != nil {
		cache.logger.Warn("video_cache_invalidate_failed", slog.Any("error", err))
	}
}

func (cache *RedisListCache) key(category string, limit int) string {
	if category == "" {
		category = "all"
	}
	return fmt.Sprintf("%s%s:%d", constants.RedisPrefixVideoList, category, limit)
}
