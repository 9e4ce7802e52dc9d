package booth

import (
	"context"
	"fmt"
	"net/url"

	"github.com/phambaophuc/ai-photobooth/internal/models"
)

// DownloadLink is the page a QR code on the booth screen points to.
func (s *Service) DownloadLink(id string) string {
	return fmt.Sprintf("%s/download?imageId=%s", s.booth.BaseURL, url.QueryEscape(id))
}

// Download resolves the images for the download page. Display copies are used
// once rendered, the raw images until then.
func (s *Service) Download(ctx context.Context, id string) (*models.PhotoView, error) {
	photo, err := s.records.GetPhoto(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(photo), nil
}

func (s *Service) view(photo *models.Photo) *models.PhotoView {
	original := firstNonEmpty(photo.OriginalDisplayImage, photo.OriginalImage)
	edited := firstNonEmpty(photo.EditedDisplayImage, photo.EditedImage)

	return &models.PhotoView{
		ID:           photo.ID,
		OriginalURL:  s.objects.PublicURL(original),
		EditedURL:    s.objects.PublicURL(edited),
		DownloadLink: s.DownloadLink(photo.ID),
		Edited:       photo.EditedImage != "",
		Displayed:    photo.EditedDisplayImage != "",
	}
}

// View is Download for a photo already loaded.
func (s *Service) View(photo *models.Photo) *models.PhotoView {
	return s.view(photo)
}

// Feedback records the download page form. Subscribed defaults to true.
func (s *Service) Feedback(ctx context.Context, id string, req models.FeedbackRequest) (*models.Feedback, error) {
	subscribed := true
	if req.Subscribed != nil {
		subscribed = *req.Subscribed
	}
	return s.records.AddFeedback(ctx, id, req.Email, subscribed, req.Rating)
}

// FeedbackFor lists the responses left for a photo, oldest first.
func (s *Service) FeedbackFor(ctx context.Context, id string) ([]models.Feedback, error) {
	if _, err := s.records.GetPhoto(ctx, id); err != nil {
		return nil, err
	}
	list, err := s.records.ListFeedback(ctx, id)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Feedback{}
	}
	return list, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
