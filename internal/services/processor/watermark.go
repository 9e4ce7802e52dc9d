package processor

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/phambaophuc/ai-photobooth/internal/models"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	fontSizeRatio = 0.02
	captionOffset = 5
	// half of the 4px outline, the part that extends past the glyph edge
	strokeRadius = 2
)

var (
	strokeColor = color.RGBA{A: 255}
	fillColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// drawLogo places the scaled logo at the bottom-right corner and returns its
// unrounded width, which the caption is centred on.
func (p *ImageProcessor) drawLogo(dst *image.RGBA, logo image.Image, spec models.WatermarkSpec) float64 {
	outW, outH := dst.Bounds().Dx(), dst.Bounds().Dy()

	w, h := logoSize(outW, spec.Scale, logo.Bounds())
	scaled := p.scaleLogo(logo, w, h)

	x := int(math.Round(float64(outW) - w - float64(spec.MarginX)))
	y := int(math.Round(float64(outH) - h - float64(spec.MarginY)))

	r := scaled.Bounds().Add(image.Pt(x, y))
	mask := image.NewUniform(color.Alpha{A: alpha8(spec.Opacity)})
	draw.DrawMask(dst, r, scaled, image.Point{}, mask, image.Point{}, draw.Over)

	return w
}

// drawCaption renders the outline pass and then the fill pass at the same anchor.
func (p *ImageProcessor) drawCaption(dst *image.RGBA, ttf *truetype.Font, spec models.WatermarkSpec, logoW float64) error {
	outW, outH := dst.Bounds().Dx(), dst.Bounds().Dy()

	size := float64(outW) * fontSizeRatio
	if size <= 0 {
		return nil
	}

	face := truetype.NewFace(ttf, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingNone})
	defer face.Close()

	metrics := face.Metrics()
	advance := font.MeasureString(face, spec.Text)

	centerX := float64(outW) - logoW/2 - float64(spec.MarginX)
	top := float64(outH - spec.MarginY + captionOffset)

	origin := fixed.Point26_6{
		X: toFixed(centerX) - advance/2,
		Y: toFixed(top) + metrics.Ascent,
	}

	area := image.Rect(
		origin.X.Floor()-strokeRadius-1,
		int(math.Floor(top))-strokeRadius-1,
		(origin.X+advance).Ceil()+strokeRadius+1,
		(origin.Y+metrics.Descent).Ceil()+strokeRadius+1,
	).Intersect(dst.Bounds())
	if area.Empty() {
		return nil
	}

	stroke, err := rasterize(ttf, size, area, spec.Text, origin, strokeOffsets(strokeRadius))
	if err != nil {
		return err
	}
	fill, err := rasterize(ttf, size, area, spec.Text, origin, []image.Point{{}})
	if err != nil {
		return err
	}

	paint(dst, stroke, strokeColor, spec.Opacity)
	paint(dst, fill, fillColor, math.Min(1, spec.Opacity*2))

	return nil
}

// rasterize draws text once per offset into a coverage mask covering area.
func rasterize(ttf *truetype.Font, size float64, area image.Rectangle, text string, at fixed.Point26_6, offsets []image.Point) (*image.Alpha, error) {
	mask := image.NewAlpha(area)

	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(ttf)
	c.SetFontSize(size)
	c.SetClip(area)
	c.SetDst(mask)
	c.SetSrc(image.Opaque)
	c.SetHinting(font.HintingNone)

	for _, off := range offsets {
		pt := fixed.Point26_6{X: at.X + fixed.I(off.X), Y: at.Y + fixed.I(off.Y)}
		if _, err := c.DrawString(text, pt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrResource, err)
		}
	}

	return mask, nil
}

// paint composites col through mask with the coverage scaled by alpha.
func paint(dst *image.RGBA, mask *image.Alpha, col color.Color, alpha float64) {
	if alpha <= 0 {
		return
	}

	scaled := image.NewAlpha(mask.Bounds())
	for i, v := range mask.Pix {
		scaled.Pix[i] = uint8(math.Round(float64(v) * alpha))
	}

	r := mask.Bounds()
	draw.DrawMask(dst, r, image.NewUniform(col), image.Point{}, scaled, r.Min, draw.Over)
}

func strokeOffsets(radius int) []image.Point {
	var pts []image.Point
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				pts = append(pts, image.Pt(dx, dy))
			}
		}
	}
	return pts
}

func alpha8(opacity float64) uint8 {
	return uint8(math.Round(opacity * 255))
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
