package models

import "time"

// Gallery is one recomputation of the marquee strips.
type Gallery struct {
	Images      []string   `json:"images"`
	Marquees    [][]string `json:"marquees"`
	RefreshedAt time.Time  `json:"refreshed_at"`
}

type PhotoEventType string

const (
	PhotoInserted PhotoEventType = "INSERT"
	PhotoUpdated  PhotoEventType = "UPDATE"
)

// PhotoEvent is a change notification on aipb_images.
type PhotoEvent struct {
	Type    PhotoEventType `json:"type"`
	PhotoID string         `json:"photo_id"`
	At      time.Time      `json:"at"`
}
