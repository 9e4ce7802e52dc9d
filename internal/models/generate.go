package models

// GenerateRequest and GenerateResponse keep the wire format of /api/generate.
type GenerateRequest struct {
	Base64Image string `json:"base64Image"`
	Prompt      string `json:"prompt"`
}

type GenerateResponse struct {
	Base64 string `json:"base64"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type GalleryListResponse struct {
	Data []string `json:"data"`
}

type CostumeSelection struct {
	Items  []string `json:"items"`
	Prompt string   `json:"prompt"`
}
