package processor

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// logoSize derives the rendered logo size from the output width, keeping the
// logo's native aspect ratio.
func logoSize(outW int, scale float64, logo image.Rectangle) (float64, float64) {
	w := float64(outW) * scale
	h := w * float64(logo.Dy()) / float64(logo.Dx())
	return w, h
}

// scaleLogo resamples without smoothing.
func (p *ImageProcessor) scaleLogo(logo image.Image, w, h float64) *image.NRGBA {
	return imaging.Resize(logo, atLeastOne(w), atLeastOne(h), imaging.NearestNeighbor)
}

func atLeastOne(v float64) int {
	n := int(math.Round(v))
	if n < 1 {
		return 1
	}
	return n
}
