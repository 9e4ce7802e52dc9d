package storage

import (
	"context"
	"encoding/json"
	"path"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// ListFolder returns object paths under folder, skipping placeholder entries.
func (s *StorageService) ListFolder(ctx context.Context, folder string, limit, offset int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	names, err := s.bucket.List(folder, limit, offset)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" || strings.HasPrefix(name, ".") {
			continue
		}
		paths = append(paths, path.Join(folder, name))
	}
	return paths, nil
}

func (s *StorageService) galleryCacheKey() string {
	return GenerateCacheKey(s.bucket.Name(), s.galleryFolder, strconv.Itoa(s.galleryLimit), "0")
}

// GalleryOriginals lists the public URLs of captured originals, served from
// Redis when a fresh copy is cached.
func (s *StorageService) GalleryOriginals(ctx context.Context) ([]string, error) {
	key := s.galleryCacheKey()

	cached, err := s.GetFromCache(ctx, key)
	if err != nil {
		s.logger.Warn("Gallery cache read failed", zap.Error(err))
	} else if cached != nil {
		var urls []string
		if err := json.Unmarshal(cached, &urls); err == nil {
			s.logger.Debug("Cache hit", zap.String("cache_key", key))
			return urls, nil
		}
	}

	paths, err := s.ListFolder(ctx, s.galleryFolder, s.galleryLimit, 0)
	if err != nil {
		return nil, err
	}

	urls := make([]string, len(paths))
	for i, p := range paths {
		urls[i] = s.bucket.PublicURL(p)
	}

	if data, err := json.Marshal(urls); err == nil {
		if err := s.SetCache(ctx, key, data); err != nil {
			s.logger.Warn("Failed to cache gallery", zap.String("cache_key", key), zap.Error(err))
		}
	}

	return urls, nil
}

// InvalidateGallery drops the cached originals listing.
func (s *StorageService) InvalidateGallery(ctx context.Context) {
	if err := s.DeleteCache(ctx, s.galleryCacheKey()); err != nil {
		s.logger.Warn("Failed to invalidate gallery cache", zap.Error(err))
	}
}
