package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/phambaophuc/ai-photobooth/internal/models"
	"github.com/phambaophuc/ai-photobooth/internal/services/booth"
	"github.com/phambaophuc/ai-photobooth/internal/services/generator"
	"github.com/phambaophuc/ai-photobooth/internal/services/processor"
	"github.com/phambaophuc/ai-photobooth/internal/services/records"
)

func respondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, models.APIResponse{
		Success: false,
		Error:   message,
	})
}

func respondOK(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, models.APIResponse{
		Success: true,
		Data:    data,
	})
}

// respondServiceError maps service sentinels to status codes. Unknown errors
// are logged and hidden behind a generic message.
func respondServiceError(c *gin.Context, logger *zap.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("Request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		_ = c.Error(err)
		respondError(c, status, "Internal server error")
		return
	}
	respondError(c, status, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, processor.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, booth.ErrInvalidInput),
		errors.Is(err, processor.ErrDecode),
		errors.Is(err, processor.ErrInvalidArgument),
		errors.Is(err, records.ErrInvalidFeedback):
		return http.StatusBadRequest
	case errors.Is(err, records.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, booth.ErrNotEdited):
		return http.StatusConflict
	case errors.Is(err, generator.ErrNoImage):
		return http.StatusBadGateway
	case errors.Is(err, booth.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
