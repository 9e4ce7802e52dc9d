package storage

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const galleryCachePrefix = "gallery_cache:"

func (s *StorageService) GetFromCache(ctx context.Context, cacheKey string) ([]byte, error) {
	if s.redisClient == nil {
		return nil, nil
	}

	data, err := s.redisClient.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // Cache miss
		}
		return nil, fmt.Errorf("cache get error: %w", err)
	}
	return data, nil
}

func (s *StorageService) SetCache(ctx context.Context, cacheKey string, data []byte) error {
	if s.redisClient == nil {
		return nil
	}
	return s.redisClient.Set(ctx, cacheKey, data, s.cacheDuration).Err()
}

func (s *StorageService) DeleteCache(ctx context.Context, cacheKey string) error {
	if s.redisClient == nil {
		return nil
	}
	return s.redisClient.Del(ctx, cacheKey).Err()
}

func GenerateCacheKey(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return fmt.Sprintf("%s%x", galleryCachePrefix, sum)
}

func (s *StorageService) GetCacheStats(ctx context.Context) (map[string]interface{}, error) {
	if s.redisClient == nil {
		return map[string]interface{}{"enabled": false}, nil
	}

	dbSize, err := s.redisClient.DBSize(ctx).Result()
	if err != nil {
		return nil, err
	}

	keys, err := s.redisClient.Keys(ctx, galleryCachePrefix+"*").Result()
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"enabled":      true,
		"db_keys":      dbSize,
		"gallery_keys": len(keys),
	}, nil
}
