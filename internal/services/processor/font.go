package processor

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	defaultFontOnce sync.Once
	defaultFont     *truetype.Font
	defaultFontErr  error
)

// loadFont parses data, or the bundled Go Regular face when data is empty.
func loadFont(data []byte) (*truetype.Font, error) {
	if len(data) == 0 {
		defaultFontOnce.Do(func() {
			defaultFont, defaultFontErr = truetype.Parse(goregular.TTF)
		})
		if defaultFontErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrResource, defaultFontErr)
		}
		return defaultFont, nil
	}

	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResource, err)
	}
	return f, nil
}
