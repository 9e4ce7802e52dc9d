// Package booth runs the photobooth flow: capture, AI edit, watermarked
// display copies, download links and feedback.
package booth

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/phambaophuc/ai-photobooth/internal/config"
	"github.com/phambaophuc/ai-photobooth/internal/models"
	"github.com/phambaophuc/ai-photobooth/internal/services/generator"
	"github.com/phambaophuc/ai-photobooth/pkg/utils"
)

type Service struct {
	objects   objectStore
	records   recordStore
	generator ImageGenerator
	processor imageProcessor
	publisher JobPublisher
	logger    *zap.Logger

	storage config.StorageConfig
	booth   config.BoothConfig

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewService wires the booth. gen may be nil when no API key is configured.
func NewService(
	objects objectStore,
	records recordStore,
	gen ImageGenerator,
	processor imageProcessor,
	cfg *config.Config,
	logger *zap.Logger,
) *Service {
	return &Service{
		objects:   objects,
		records:   records,
		generator: gen,
		processor: processor,
		logger:    logger,
		storage:   cfg.Storage,
		booth:     cfg.Booth,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetPublisher routes display rendering through a queue. Without one, display
// images are rendered inline after each edit.
func (s *Service) SetPublisher(p JobPublisher) {
	s.publisher = p
}

// Capture stores a webcam shot under original/<uuid> and records it.
func (s *Service) Capture(ctx context.Context, base64Image string) (*models.Photo, error) {
	data, err := utils.DecodeBase64Image(base64Image)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.processor.ValidateImage(data, s.storage.MaxFileSize); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	contentType, ext := utils.DetectImageType(data)
	originalPath := utils.StorageKey(s.storage.OriginalFolder, uuid.New().String(), ext)

	if _, err := s.objects.Upload(ctx, originalPath, data, contentType); err != nil {
		return nil, err
	}

	photo, err := s.records.CreatePhoto(ctx, originalPath)
	if err != nil {
		if delErr := s.objects.Delete(context.WithoutCancel(ctx), originalPath); delErr != nil {
			s.logger.Error("Failed to remove orphaned original",
				zap.String("path", originalPath),
				zap.Error(delErr))
		}
		return nil, err
	}

	s.objects.InvalidateGallery(ctx)

	s.logger.Info("Photo captured",
		zap.String("photo_id", photo.ID),
		zap.String("path", originalPath))
	return photo, nil
}

// Edit runs the captured original through the generator with the costume tags
// and stores the result under edited/<id>.
func (s *Service) Edit(ctx context.Context, id, tags string) (*models.Photo, error) {
	if strings.TrimSpace(tags) == "" {
		return nil, fmt.Errorf("%w: tags are required", ErrInvalidInput)
	}
	if s.generator == nil {
		return nil, ErrUnavailable
	}

	photo, err := s.records.GetPhoto(ctx, id)
	if err != nil {
		return nil, err
	}

	original, err := s.objects.Download(ctx, photo.OriginalImage)
	if err != nil {
		return nil, err
	}

	prompt := generator.BuildPrompt(tags)
	mimeType, _ := utils.DetectImageType(original)

	edited, err := s.generator.Generate(ctx, original, mimeType, prompt)
	if err != nil {
		return nil, err
	}

	contentType, ext := utils.DetectImageType(edited)
	editedPath := utils.StorageKey(s.storage.EditedFolder, photo.ID, ext)

	if _, err := s.objects.Upload(ctx, editedPath, edited, contentType); err != nil {
		return nil, err
	}
	if err := s.records.SetEdited(ctx, photo.ID, editedPath, prompt); err != nil {
		return nil, err
	}

	photo.EditedImage = editedPath
	photo.Prompt = prompt

	s.logger.Info("Photo edited",
		zap.String("photo_id", photo.ID),
		zap.String("tags", tags))

	s.scheduleDisplay(ctx, photo.ID)
	return photo, nil
}

// GenerateBase64 is the stateless generate call: base64 in, base64 out.
func (s *Service) GenerateBase64(ctx context.Context, base64Image, prompt string) (string, error) {
	if s.generator == nil {
		return "", ErrUnavailable
	}

	data, err := utils.DecodeBase64Image(base64Image)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	mimeType, _ := utils.DetectImageType(data)

	out, err := s.generator.Generate(ctx, data, mimeType, prompt)
	if err != nil {
		return "", err
	}
	return utils.EncodeBase64(out), nil
}

func (s *Service) scheduleDisplay(ctx context.Context, photoID string) {
	job := &models.DisplayJob{
		ID:        uuid.New().String(),
		PhotoID:   photoID,
		Status:    models.StatusPending,
		CreatedAt: time.Now(),
	}

	if s.publisher != nil {
		err := s.publisher.PublishJob(ctx, job)
		if err == nil {
			return
		}
		s.logger.Warn("Failed to queue display job, rendering inline",
			zap.String("photo_id", photoID),
			zap.Error(err))
	}

	if err := s.HandleJob(ctx, job); err != nil {
		s.logger.Error("Display rendering failed",
			zap.String("photo_id", photoID),
			zap.Error(err))
	}
}
