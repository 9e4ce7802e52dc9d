package booth

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/phambaophuc/ai-photobooth/internal/models"
	"github.com/phambaophuc/ai-photobooth/internal/services/processor"
	"github.com/phambaophuc/ai-photobooth/internal/services/storage"
	"github.com/phambaophuc/ai-photobooth/pkg/utils"
)

// HandleJob is the queue worker entry point.
func (s *Service) HandleJob(ctx context.Context, job *models.DisplayJob) error {
	return s.RenderDisplay(ctx, job.PhotoID)
}

// RenderDisplay watermarks the original and edited images and records the
// copies. The record update is what refreshes the gallery wall.
func (s *Service) RenderDisplay(ctx context.Context, id string) error {
	photo, err := s.records.GetPhoto(ctx, id)
	if err != nil {
		return err
	}
	if photo.EditedImage == "" {
		return ErrNotEdited
	}

	sources := []string{photo.OriginalImage, photo.EditedImage}
	suffixes := []string{"original", "edited"}
	files := make([]storage.UploadFile, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	for i := range sources {
		g.Go(func() error {
			data, err := s.objects.Download(gctx, sources[i])
			if err != nil {
				return err
			}

			out, format, err := s.processor.Watermark(data)
			if err != nil {
				return fmt.Errorf("watermark %s: %w", sources[i], err)
			}

			files[i] = storage.UploadFile{
				Path:        utils.StorageKey(s.storage.DisplayFolder, photo.ID+"_"+suffixes[i], "."+extension(format)),
				Data:        out.Bytes(),
				ContentType: processor.ContentType(format),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if _, err := s.objects.UploadMultiple(ctx, files); err != nil {
		return err
	}

	if err := s.records.SetDisplay(ctx, photo.ID, files[0].Path, files[1].Path); err != nil {
		return err
	}

	s.logger.Info("Display images rendered",
		zap.String("photo_id", photo.ID),
		zap.String("original_display", files[0].Path),
		zap.String("edited_display", files[1].Path))
	return nil
}

func extension(format string) string {
	if format == models.FormatJPEG {
		return "jpg"
	}
	return format
}
