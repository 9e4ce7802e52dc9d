package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/phambaophuc/ai-photobooth/internal/models"
)

const photoColumns = `id, original_image, edited_image, original_display_image, edited_display_image, prompt, created_at`

// CreatePhoto inserts a row for a freshly captured original.
func (s *Store) CreatePhoto(ctx context.Context, originalImage string) (*models.Photo, error) {
	photo := &models.Photo{
		ID:            s.newID(),
		OriginalImage: originalImage,
		CreatedAt:     s.now(),
	}

	_, err := s.db.ExecContext(ctx,
		s.rebind(`INSERT INTO aipb_images (id, original_image, created_at) VALUES (?, ?, ?)`),
		photo.ID, photo.OriginalImage, photo.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert photo: %w", err)
	}

	s.publish(models.PhotoInserted, photo.ID)
	return photo, nil
}

func (s *Store) GetPhoto(ctx context.Context, id string) (*models.Photo, error) {
	row := s.db.QueryRowContext(ctx,
		s.rebind(`SELECT `+photoColumns+` FROM aipb_images WHERE id = ?`), id)

	photo, err := scanPhoto(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}
	return photo, nil
}

// SetEdited records the generated image and the prompt that produced it.
func (s *Store) SetEdited(ctx context.Context, id, editedImage, prompt string) error {
	return s.update(ctx, id,
		`UPDATE aipb_images SET edited_image = ?, prompt = ? WHERE id = ?`,
		editedImage, prompt, id)
}

// SetDisplay records the watermarked copies shown on the download page and gallery.
func (s *Store) SetDisplay(ctx context.Context, id, originalDisplay, editedDisplay string) error {
	return s.update(ctx, id,
		`UPDATE aipb_images SET original_display_image = ?, edited_display_image = ? WHERE id = ?`,
		nullable(originalDisplay), nullable(editedDisplay), id)
}

func (s *Store) update(ctx context.Context, id, query string, args ...interface{}) error {
	res, err := s.db.ExecContext(ctx, s.rebind(query), args...)
	if err != nil {
		return fmt.Errorf("failed to update photo: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update photo: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	s.publish(models.PhotoUpdated, id)
	return nil
}

// ListDisplayed returns edited display paths, newest first. limit <= 0 means all.
func (s *Store) ListDisplayed(ctx context.Context, limit int) ([]string, error) {
	query := `SELECT edited_display_image FROM aipb_images
		WHERE edited_display_image IS NOT NULL AND edited_display_image <> ''
		ORDER BY created_at DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("failed to scan photo: %w", err)
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPhoto(row rowScanner) (*models.Photo, error) {
	var (
		p                                      models.Photo
		edited, origDisplay, editDisplay, prmt sql.NullString
	)
	if err := row.Scan(&p.ID, &p.OriginalImage, &edited, &origDisplay, &editDisplay, &prmt, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.EditedImage = edited.String
	p.OriginalDisplayImage = origDisplay.String
	p.EditedDisplayImage = editDisplay.String
	p.Prompt = prmt.String
	return &p, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
