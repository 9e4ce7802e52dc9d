package models

// WatermarkSpec configures one compositor call. Logo holds the encoded
// watermark asset and Font an optional TrueType font.
type WatermarkSpec struct {
	Logo    []byte  `json:"-"`
	Font    []byte  `json:"-"`
	Text    string  `json:"text,omitempty"`
	Opacity float64 `json:"opacity" binding:"min=0,max=1"`
	Scale   float64 `json:"scale" binding:"gt=0"`
	MarginX int     `json:"margin_x"`
	MarginY int     `json:"margin_y"`
	Quality int     `json:"quality,omitempty" binding:"omitempty,min=1,max=100"`
}

const (
	FormatJPEG = "jpeg"
	FormatPNG  = "png"
	FormatGIF  = "gif"
	FormatWebP = "webp"
)
