package processor

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/phambaophuc/ai-photobooth/internal/models"
)

// encodeImage writes img in the given format and returns the format actually used.
// There is no webp encoder available, so webp input comes back as png.
func (p *ImageProcessor) encodeImage(w io.Writer, img image.Image, format string, quality int) (string, error) {
	switch format {
	case models.FormatJPEG, "jpg":
		return models.FormatJPEG, jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case models.FormatGIF:
		return models.FormatGIF, gif.Encode(w, img, nil)
	default:
		return models.FormatPNG, png.Encode(w, img)
	}
}

// ContentType maps an encoder format to its MIME type.
func ContentType(format string) string {
	switch format {
	case models.FormatJPEG, "jpg":
		return "image/jpeg"
	case models.FormatGIF:
		return "image/gif"
	case models.FormatWebP:
		return "image/webp"
	default:
		return "image/png"
	}
}
