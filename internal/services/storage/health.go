package storage

import (
	"context"

	"github.com/phambaophuc/ai-photobooth/internal/models"
)

// HealthCheck checks Redis + Supabase
func (s *StorageService) HealthCheck(ctx context.Context) map[string]string {
	status := make(map[string]string)

	if s.redisClient == nil {
		status["redis"] = models.StatusNotConfigured
	} else if err := s.redisClient.Ping(ctx).Err(); err != nil {
		status["redis"] = models.StatusUnhealthy + ": " + err.Error()
	} else {
		status["redis"] = models.StatusHealthy
	}

	if _, err := s.bucket.List("", 1, 0); err != nil {
		status["supabase"] = models.StatusUnhealthy + ": " + err.Error()
	} else {
		status["supabase"] = models.StatusHealthy
	}

	return status
}
