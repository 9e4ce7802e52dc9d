package processor

import (
	"fmt"
	"os"

	"github.com/phambaophuc/ai-photobooth/internal/config"
	"github.com/phambaophuc/ai-photobooth/internal/models"
)

// SpecFromConfig loads the logo and font files named in cfg. Empty paths keep
// the built-in badge and Go Regular.
func SpecFromConfig(cfg config.WatermarkConfig) (models.WatermarkSpec, error) {
	spec := models.WatermarkSpec{
		Text:    cfg.Text,
		Opacity: cfg.Opacity,
		Scale:   cfg.Scale,
		MarginX: cfg.MarginX,
		MarginY: cfg.MarginY,
		Quality: cfg.Quality,
	}

	if cfg.LogoPath != "" {
		logo, err := os.ReadFile(cfg.LogoPath)
		if err != nil {
			return spec, fmt.Errorf("%w: logo: %v", ErrResource, err)
		}
		spec.Logo = logo
	}

	if cfg.FontPath != "" {
		font, err := os.ReadFile(cfg.FontPath)
		if err != nil {
			return spec, fmt.Errorf("%w: font: %v", ErrResource, err)
		}
		if _, err := loadFont(font); err != nil {
			return spec, err
		}
		spec.Font = font
	}

	return spec, nil
}
