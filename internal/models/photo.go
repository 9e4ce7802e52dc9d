package models

import "time"

// Photo is a row of aipb_images. Image columns hold object paths inside the bucket.
type Photo struct {
	ID                   string    `json:"id"`
	OriginalImage        string    `json:"original_image"`
	EditedImage          string    `json:"edited_image,omitempty"`
	OriginalDisplayImage string    `json:"original_display_image,omitempty"`
	EditedDisplayImage   string    `json:"edited_display_image,omitempty"`
	Prompt               string    `json:"prompt,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

// Feedback is a row of aipb_image_users.
type Feedback struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Subscribed bool      `json:"subscribed"`
	ImageID    string    `json:"image_id"`
	Rating     int       `json:"rating"`
	CreatedAt  time.Time `json:"created_at"`
}

type CaptureRequest struct {
	Base64Image string `json:"base64Image" binding:"required"`
}

type EditRequest struct {
	Tags string `json:"tags" binding:"required"`
}

type FeedbackRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Subscribed *bool  `json:"subscribed"`
	Rating     int    `json:"rating" binding:"required,min=1,max=6"`
}

// PhotoView is what the booth and download page show for one photo.
type PhotoView struct {
	ID           string `json:"id"`
	OriginalURL  string `json:"original_url"`
	EditedURL    string `json:"edited_url,omitempty"`
	DownloadLink string `json:"download_link"`
	Edited       bool   `json:"edited"`
	Displayed    bool   `json:"displayed"`
}
