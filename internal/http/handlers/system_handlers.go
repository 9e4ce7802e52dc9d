package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/phambaophuc/ai-photobooth/internal/models"
)

type HealthHandler struct {
	storage storageHealth
	records pinger
	queue   queueHealth
}

// NewHealthHandler takes a nil queue when RabbitMQ is not in use.
func NewHealthHandler(storage storageHealth, records pinger, queue queueHealth) *HealthHandler {
	return &HealthHandler{
		storage: storage,
		records: records,
		queue:   queue,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	services := h.storage.HealthCheck(ctx)
	if err := h.records.Ping(ctx); err != nil {
		services["database"] = models.StatusUnhealthy + ": " + err.Error()
	} else {
		services["database"] = models.StatusHealthy
	}
	if h.queue == nil {
		services["rabbitmq"] = models.StatusNotConfigured
	} else {
		services["rabbitmq"] = h.queue.HealthCheck()
	}

	overall := calculateOverallHealth(services)

	statusCode := http.StatusOK
	if overall == models.StatusUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, models.APIResponse{
		Success: overall == models.StatusHealthy,
		Data: models.HealthCheck{
			Status:    overall,
			Timestamp: time.Now(),
			Services:  services,
		},
	})
}

func calculateOverallHealth(services map[string]string) string {
	for _, status := range services {
		if status != models.StatusHealthy && status != models.StatusNotConfigured {
			return models.StatusUnhealthy
		}
	}
	return models.StatusHealthy
}

type StatsHandler struct {
	cache  cacheStats
	queue  queueStats
	logger *zap.Logger
}

// NewStatsHandler takes a nil queue when RabbitMQ is not in use.
func NewStatsHandler(cache cacheStats, queue queueStats, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		cache:  cache,
		queue:  queue,
		logger: logger,
	}
}

// Stats reports the gallery cache and the display queue. A part that cannot
// be read is reported unhealthy rather than failing the request.
func (h *StatsHandler) Stats(c *gin.Context) {
	cache, err := h.cache.GetCacheStats(c.Request.Context())
	if err != nil {
		h.logger.Warn("Failed to read cache stats", zap.Error(err))
		cache = map[string]interface{}{"status": models.StatusUnhealthy + ": " + err.Error()}
	}

	var queue map[string]interface{}
	if h.queue == nil {
		queue = map[string]interface{}{"status": models.StatusNotConfigured}
	} else if queue, err = h.queue.GetQueueStats(); err != nil {
		h.logger.Warn("Failed to read queue stats", zap.Error(err))
		queue = map[string]interface{}{"status": models.StatusUnhealthy + ": " + err.Error()}
	}

	respondOK(c, http.StatusOK, gin.H{
		"cache": cache,
		"queue": queue,
	})
}

// ObjectHandler serves objects from the in-memory bucket used when Supabase
// is not configured.
type ObjectHandler struct {
	objects objectReader
}

func NewObjectHandler(objects objectReader) *ObjectHandler {
	return &ObjectHandler{objects: objects}
}

func (h *ObjectHandler) Serve(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	data, err := h.objects.Download(path)
	if err != nil {
		respondError(c, http.StatusNotFound, "object not found")
		return
	}

	contentType := h.objects.ContentType(path)
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	c.Data(http.StatusOK, contentType, data)
}
