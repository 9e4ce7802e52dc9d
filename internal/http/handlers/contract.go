package handlers

import (
	"bytes"
	"context"

	"github.com/phambaophuc/ai-photobooth/internal/models"
)

type boothService interface {
	Capture(ctx context.Context, base64Image string) (*models.Photo, error)
	Edit(ctx context.Context, id, tags string) (*models.Photo, error)
	Download(ctx context.Context, id string) (*models.PhotoView, error)
	View(photo *models.Photo) *models.PhotoView
	Feedback(ctx context.Context, id string, req models.FeedbackRequest) (*models.Feedback, error)
	FeedbackFor(ctx context.Context, id string) ([]models.Feedback, error)
	GenerateBase64(ctx context.Context, base64Image, prompt string) (string, error)
	Costumes() []string
	RandomCostumes(n int) models.CostumeSelection
}

type galleryService interface {
	Current(ctx context.Context) (models.Gallery, error)
	Subscribe() (<-chan models.Gallery, func())
}

type originalsLister interface {
	GalleryOriginals(ctx context.Context) ([]string, error)
}

type watermarker interface {
	DefaultSpec() models.WatermarkSpec
	Composite(base []byte, spec models.WatermarkSpec) (*bytes.Buffer, string, error)
}

type objectReader interface {
	Download(path string) ([]byte, error)
	ContentType(path string) string
}

type storageHealth interface {
	HealthCheck(ctx context.Context) map[string]string
}

type pinger interface {
	Ping(ctx context.Context) error
}

type queueHealth interface {
	HealthCheck() string
}

type cacheStats interface {
	GetCacheStats(ctx context.Context) (map[string]interface{}, error)
}

type queueStats interface {
	GetQueueStats() (map[string]interface{}, error)
}
