package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/phambaophuc/ai-photobooth/internal/models"
	"github.com/phambaophuc/ai-photobooth/internal/services/booth"
	"github.com/phambaophuc/ai-photobooth/internal/services/generator"
)

// CompatHandler serves the endpoints the booth frontend already calls, with
// their original bodies rather than the APIResponse envelope.
type CompatHandler struct {
	booth     boothService
	originals originalsLister
	logger    *zap.Logger
}

func NewCompatHandler(booth boothService, originals originalsLister, logger *zap.Logger) *CompatHandler {
	return &CompatHandler{
		booth:     booth,
		originals: originals,
		logger:    logger,
	}
}

func (h *CompatHandler) Generate(c *gin.Context) {
	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Base64Image == "" || req.Prompt == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Missing data"})
		return
	}

	out, err := h.booth.GenerateBase64(c.Request.Context(), req.Base64Image, req.Prompt)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, models.GenerateResponse{Base64: out})
	case errors.Is(err, booth.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid image data"})
	case errors.Is(err, generator.ErrNoImage):
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "No valid image response."})
	default:
		h.logger.Error("Generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error."})
	}
}

func (h *CompatHandler) Gallery(c *gin.Context) {
	urls, err := h.originals.GalleryOriginals(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list gallery", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	if urls == nil {
		urls = []string{}
	}
	c.JSON(http.StatusOK, models.GalleryListResponse{Data: urls})
}

// Download backs the page the booth QR code opens.
func (h *CompatHandler) Download(c *gin.Context) {
	id := c.Query("imageId")
	if id == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "imageId is required"})
		return
	}

	view, err := h.booth.Download(c.Request.Context(), id)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("Download lookup failed", zap.String("image_id", id), zap.Error(err))
			c.JSON(status, models.ErrorResponse{Error: "Internal server error."})
			return
		}
		c.JSON(status, models.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}
