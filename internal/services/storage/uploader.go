package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Upload stores data under path and returns its public URL.
func (s *StorageService) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := s.bucket.Upload(path, data, contentType); err != nil {
		return "", fmt.Errorf("failed to upload to supabase: %w", err)
	}

	s.logger.Debug("Object uploaded",
		zap.String("path", path),
		zap.Int("bytes", len(data)),
	)

	return s.bucket.PublicURL(path), nil
}

// Delete removes the object at path from the bucket.
func (s *StorageService) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.bucket.Remove([]string{path})
}

func (s *StorageService) PublicURL(path string) string {
	if path == "" {
		return ""
	}
	return s.bucket.PublicURL(path)
}
