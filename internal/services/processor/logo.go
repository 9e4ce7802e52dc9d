package processor

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"sync"

	"github.com/disintegration/imaging"
)

var (
	defaultLogoOnce sync.Once
	defaultLogo     []byte
)

// DefaultLogo returns the PNG-encoded badge used when no logo file is configured:
// a white ring with a centred dot on a transparent background, twice as wide as tall.
func DefaultLogo() []byte {
	defaultLogoOnce.Do(func() {
		var buf bytes.Buffer
		if err := png.Encode(&buf, drawBadge(256, 128)); err != nil {
			panic(err)
		}
		defaultLogo = buf.Bytes()
	})
	return defaultLogo
}

func drawBadge(w, h int) *image.NRGBA {
	img := imaging.New(w, h, color.NRGBA{})
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	cx, cy := float64(w)/2, float64(h)/2
	outer := float64(h)/2 - 4
	inner := outer - 12
	dot := outer / 3

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			if (d <= outer && d >= inner) || d <= dot {
				img.SetNRGBA(x, y, white)
			}
		}
	}

	// side bars
	for y := int(cy) - 6; y < int(cy)+6; y++ {
		for x := 8; x < int(cx-outer)-8; x++ {
			img.SetNRGBA(x, y, white)
			img.SetNRGBA(w-1-x, y, white)
		}
	}

	return img
}
