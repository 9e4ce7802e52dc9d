package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type GalleryHandler struct {
	gallery galleryService
	logger  *zap.Logger
}

func NewGalleryHandler(gallery galleryService, logger *zap.Logger) *GalleryHandler {
	return &GalleryHandler{
		gallery: gallery,
		logger:  logger,
	}
}

func (h *GalleryHandler) Marquee(c *gin.Context) {
	g, err := h.gallery.Current(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondOK(c, http.StatusOK, g)
}

// Stream pushes the current wall, then every recomputed wall as a "gallery"
// server-sent event.
func (h *GalleryHandler) Stream(c *gin.Context) {
	ctx := c.Request.Context()

	updates, cancel := h.gallery.Subscribe()
	defer cancel()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	if g, err := h.gallery.Current(ctx); err != nil {
		h.logger.Warn("Gallery not available for new stream", zap.Error(err))
	} else {
		c.SSEvent("gallery", g)
		c.Writer.Flush()
	}

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case g, ok := <-updates:
			if !ok {
				return false
			}
			c.SSEvent("gallery", g)
			return true
		}
	})
}
