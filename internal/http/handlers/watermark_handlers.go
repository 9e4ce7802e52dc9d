package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/phambaophuc/ai-photobooth/internal/models"
	"github.com/phambaophuc/ai-photobooth/internal/services/processor"
)

const (
	imageParamKey = "image"
	logoParamKey  = "logo"
)

type WatermarkHandler struct {
	processor   watermarker
	maxFileSize int64
	logger      *zap.Logger
}

func NewWatermarkHandler(p watermarker, maxFileSize int64, logger *zap.Logger) *WatermarkHandler {
	return &WatermarkHandler{
		processor:   p,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// Watermark composites the uploaded image with the configured logo and caption.
// Form fields text, opacity, scale, margin_x, margin_y, quality and a logo file
// override the defaults.
func (h *WatermarkHandler) Watermark(c *gin.Context) {
	base, err := h.readFormFile(c, imageParamKey)
	if err != nil {
		respondError(c, http.StatusBadRequest, "No image file provided")
		return
	}

	spec, err := h.parseSpec(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	out, format, err := h.processor.Composite(base, spec)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, processor.ContentType(format), out.Bytes())
}

func (h *WatermarkHandler) parseSpec(c *gin.Context) (models.WatermarkSpec, error) {
	spec := h.processor.DefaultSpec()

	if text, ok := c.GetPostForm("text"); ok {
		spec.Text = text
	}

	var err error
	if spec.Opacity, err = parseFloat(c, "opacity", spec.Opacity); err != nil {
		return spec, err
	}
	if spec.Scale, err = parseFloat(c, "scale", spec.Scale); err != nil {
		return spec, err
	}
	if spec.MarginX, err = parseInt(c, "margin_x", spec.MarginX); err != nil {
		return spec, err
	}
	if spec.MarginY, err = parseInt(c, "margin_y", spec.MarginY); err != nil {
		return spec, err
	}
	if spec.Quality, err = parseInt(c, "quality", spec.Quality); err != nil {
		return spec, err
	}
	if spec.Quality < 1 || spec.Quality > 100 {
		return spec, fmt.Errorf("quality must be between 1 and 100")
	}

	if _, err := c.FormFile(logoParamKey); err == nil {
		logo, err := h.readFormFile(c, logoParamKey)
		if err != nil {
			return spec, err
		}
		spec.Logo = logo
	}

	return spec, nil
}

func (h *WatermarkHandler) readFormFile(c *gin.Context, key string) ([]byte, error) {
	header, err := c.FormFile(key)
	if err != nil {
		return nil, err
	}
	if h.maxFileSize > 0 && header.Size > h.maxFileSize {
		return nil, fmt.Errorf("%s exceeds %d bytes", key, h.maxFileSize)
	}
	return readAll(header)
}

func readAll(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func parseFloat(c *gin.Context, key string, fallback float64) (float64, error) {
	raw, ok := c.GetPostForm(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: must be a number", key)
	}
	return v, nil
}

func parseInt(c *gin.Context, key string, fallback int) (int, error) {
	raw, ok := c.GetPostForm(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: must be an integer", key)
	}
	return v, nil
}
