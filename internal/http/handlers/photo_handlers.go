package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/phambaophuc/ai-photobooth/internal/models"
)

type PhotoHandler struct {
	booth  boothService
	logger *zap.Logger
}

func NewPhotoHandler(booth boothService, logger *zap.Logger) *PhotoHandler {
	return &PhotoHandler{
		booth:  booth,
		logger: logger,
	}
}

func (h *PhotoHandler) Capture(c *gin.Context) {
	var req models.CaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "base64Image is required")
		return
	}

	photo, err := h.booth.Capture(c.Request.Context(), req.Base64Image)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	respondOK(c, http.StatusCreated, h.booth.View(photo))
}

func (h *PhotoHandler) GetPhoto(c *gin.Context) {
	view, err := h.booth.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondOK(c, http.StatusOK, view)
}

func (h *PhotoHandler) Edit(c *gin.Context) {
	var req models.EditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "tags are required")
		return
	}

	photo, err := h.booth.Edit(c.Request.Context(), c.Param("id"), req.Tags)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	respondOK(c, http.StatusOK, h.booth.View(photo))
}

func (h *PhotoHandler) Feedback(c *gin.Context) {
	var req models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid feedback: "+err.Error())
		return
	}

	fb, err := h.booth.Feedback(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	respondOK(c, http.StatusCreated, fb)
}

func (h *PhotoHandler) ListFeedback(c *gin.Context) {
	list, err := h.booth.FeedbackFor(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	respondOK(c, http.StatusOK, list)
}

func (h *PhotoHandler) Costumes(c *gin.Context) {
	respondOK(c, http.StatusOK, h.booth.Costumes())
}

func (h *PhotoHandler) RandomCostumes(c *gin.Context) {
	count := 0
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(c, http.StatusBadRequest, "count must be a positive integer")
			return
		}
		count = n
	}

	respondOK(c, http.StatusOK, h.booth.RandomCostumes(count))
}
