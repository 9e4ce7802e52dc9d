package models

import "time"

// DisplayJob asks a worker to render the watermarked display copies of a photo.
type DisplayJob struct {
	ID        string    `json:"id"`
	PhotoID   string    `json:"photo_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	Error     string    `json:"error,omitempty"`
}

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)
