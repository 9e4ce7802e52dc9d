package booth

import (
	"bytes"
	"context"

	"github.com/phambaophuc/ai-photobooth/internal/models"
	"github.com/phambaophuc/ai-photobooth/internal/services/storage"
)

type objectStore interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)
	UploadMultiple(ctx context.Context, files []storage.UploadFile) ([]string, error)
	Download(ctx context.Context, path string) ([]byte, error)
	Delete(ctx context.Context, path string) error
	PublicURL(path string) string
	InvalidateGallery(ctx context.Context)
}

type recordStore interface {
	CreatePhoto(ctx context.Context, originalImage string) (*models.Photo, error)
	GetPhoto(ctx context.Context, id string) (*models.Photo, error)
	SetEdited(ctx context.Context, id, editedImage, prompt string) error
	SetDisplay(ctx context.Context, id, originalDisplay, editedDisplay string) error
	AddFeedback(ctx context.Context, imageID, email string, subscribed bool, rating int) (*models.Feedback, error)
	ListFeedback(ctx context.Context, imageID string) ([]models.Feedback, error)
}

// ImageGenerator edits a photo according to a prompt.
type ImageGenerator interface {
	Generate(ctx context.Context, image []byte, mimeType, prompt string) ([]byte, error)
}

type imageProcessor interface {
	Watermark(base []byte) (*bytes.Buffer, string, error)
	ValidateImage(data []byte, maxSize int64) error
}

// JobPublisher hands display rendering to the queue workers.
type JobPublisher interface {
	PublishJob(ctx context.Context, job *models.DisplayJob) error
}
