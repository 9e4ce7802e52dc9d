package records

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/phambaophuc/ai-photobooth/internal/models"
)

var ErrInvalidFeedback = errors.New("invalid feedback")

const (
	MinRating = 1
	MaxRating = 6
)

// AddFeedback stores one download-page submission. The photo must exist.
func (s *Store) AddFeedback(ctx context.Context, imageID, email string, subscribed bool, rating int) (*models.Feedback, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidFeedback)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: email %q", ErrInvalidFeedback, email)
	}
	if rating < MinRating || rating > MaxRating {
		return nil, fmt.Errorf("%w: rating %d not in [%d,%d]", ErrInvalidFeedback, rating, MinRating, MaxRating)
	}

	if _, err := s.GetPhoto(ctx, imageID); err != nil {
		return nil, err
	}

	fb := &models.Feedback{
		ID:         s.newID(),
		Email:      email,
		Subscribed: subscribed,
		ImageID:    imageID,
		Rating:     rating,
		CreatedAt:  s.now(),
	}

	_, err := s.db.ExecContext(ctx,
		s.rebind(`INSERT INTO aipb_image_users (id, email, subscribed, image_id, rating, created_at) VALUES (?, ?, ?, ?, ?, ?)`),
		fb.ID, fb.Email, fb.Subscribed, fb.ImageID, fb.Rating, fb.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert feedback: %w", err)
	}
	return fb, nil
}

func (s *Store) ListFeedback(ctx context.Context, imageID string) ([]models.Feedback, error) {
	rows, err := s.db.QueryContext(ctx,
		s.rebind(`SELECT id, email, subscribed, image_id, rating, created_at
			FROM aipb_image_users WHERE image_id = ? ORDER BY created_at ASC`), imageID)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	defer rows.Close()

	var out []models.Feedback
	for rows.Next() {
		var fb models.Feedback
		if err := rows.Scan(&fb.ID, &fb.Email, &fb.Subscribed, &fb.ImageID, &fb.Rating, &fb.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		out = append(out, fb)
	}
	return out, rows.Err()
}
