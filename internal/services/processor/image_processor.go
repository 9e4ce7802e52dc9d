package processor

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/phambaophuc/ai-photobooth/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultQuality = 90

type ImageProcessor struct {
	defaults models.WatermarkSpec
	logger   *zap.Logger
}

// NewImageProcessor keeps defaults as the base for every watermark request.
// An empty defaults.Logo falls back to DefaultLogo.
func NewImageProcessor(defaults models.WatermarkSpec, logger *zap.Logger) *ImageProcessor {
	if len(defaults.Logo) == 0 {
		defaults.Logo = DefaultLogo()
	}
	if defaults.Quality == 0 {
		defaults.Quality = defaultQuality
	}
	return &ImageProcessor{
		defaults: defaults,
		logger:   logger,
	}
}

func (p *ImageProcessor) DefaultSpec() models.WatermarkSpec {
	return p.defaults
}

// Watermark composites with the configured defaults.
func (p *ImageProcessor) Watermark(base []byte) (*bytes.Buffer, string, error) {
	return p.Composite(base, p.defaults)
}

// Composite burns the logo and caption described by spec into base and returns
// the result encoded like the input, together with the format name.
func (p *ImageProcessor) Composite(base []byte, spec models.WatermarkSpec) (*bytes.Buffer, string, error) {
	if err := validateSpec(spec); err != nil {
		return nil, "", err
	}

	var (
		baseImg image.Image
		format  string
		logoImg image.Image
		ttf     *truetype.Font
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		baseImg, format, err = decodeImage(base, "base image")
		return err
	})
	g.Go(func() error {
		var err error
		logoImg, _, err = decodeImage(spec.Logo, "watermark image")
		return err
	})
	if spec.Text != "" {
		g.Go(func() error {
			var err error
			ttf, err = loadFont(spec.Font)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, "", err
	}

	out, err := p.compose(baseImg, logoImg, ttf, spec)
	if err != nil {
		return nil, "", err
	}

	quality := spec.Quality
	if quality == 0 {
		quality = defaultQuality
	}

	buffer := &bytes.Buffer{}
	outFormat, err := p.encodeImage(buffer, out, format, quality)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode image: %w", err)
	}

	if p.logger != nil {
		p.logger.Debug("Watermark applied",
			zap.String("format", outFormat),
			zap.Int("width", out.Bounds().Dx()),
			zap.Int("height", out.Bounds().Dy()),
			zap.Int("bytes", buffer.Len()),
		)
	}

	return buffer, outFormat, nil
}

func (p *ImageProcessor) compose(base, logo image.Image, ttf *truetype.Font, spec models.WatermarkSpec) (*image.RGBA, error) {
	b := base.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), base, b.Min, draw.Src)

	logoW := p.drawLogo(out, logo, spec)

	if spec.Text != "" {
		if err := p.drawCaption(out, ttf, spec, logoW); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func validateSpec(spec models.WatermarkSpec) error {
	if math.IsNaN(spec.Opacity) || spec.Opacity < 0 || spec.Opacity > 1 {
		return fmt.Errorf("%w: opacity %v not in [0,1]", ErrInvalidArgument, spec.Opacity)
	}
	if math.IsNaN(spec.Scale) || math.IsInf(spec.Scale, 0) || spec.Scale <= 0 {
		return fmt.Errorf("%w: scale %v must be positive", ErrInvalidArgument, spec.Scale)
	}
	if spec.Quality < 0 || spec.Quality > 100 {
		return fmt.Errorf("%w: quality %d not in [1,100]", ErrInvalidArgument, spec.Quality)
	}
	return nil
}
