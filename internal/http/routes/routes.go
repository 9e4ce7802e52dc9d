package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phambaophuc/ai-photobooth/internal/http/handlers"
	"github.com/phambaophuc/ai-photobooth/internal/http/middleware"
	"github.com/phambaophuc/ai-photobooth/internal/services/storage"
	"go.uber.org/zap"
)

type Router struct {
	photoHandler     *handlers.PhotoHandler
	compatHandler    *handlers.CompatHandler
	galleryHandler   *handlers.GalleryHandler
	watermarkHandler *handlers.WatermarkHandler
	healthHandler    *handlers.HealthHandler
	statsHandler     *handlers.StatsHandler
	objectHandler    *handlers.ObjectHandler
	maxBodySize      int64
	logger           *zap.Logger
}

type Handlers struct {
	Photo     *handlers.PhotoHandler
	Compat    *handlers.CompatHandler
	Gallery   *handlers.GalleryHandler
	Watermark *handlers.WatermarkHandler
	Health    *handlers.HealthHandler
	Stats     *handlers.StatsHandler
	// Objects is nil when images are stored in Supabase.
	Objects *handlers.ObjectHandler
}

func NewRouter(h Handlers, maxBodySize int64, logger *zap.Logger) *Router {
	return &Router{
		photoHandler:     h.Photo,
		compatHandler:    h.Compat,
		galleryHandler:   h.Gallery,
		watermarkHandler: h.Watermark,
		healthHandler:    h.Health,
		statsHandler:     h.Stats,
		objectHandler:    h.Objects,
		maxBodySize:      maxBodySize,
		logger:           logger,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger(r.logger))
	router.Use(middleware.ErrorHandler(r.logger))
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.BodyLimit(r.maxBodySize))

	api := router.Group("/api")
	{
		api.POST("/generate", r.compatHandler.Generate)
		api.GET("/gallery", r.compatHandler.Gallery)
	}
	router.GET("/download", r.compatHandler.Download)

	// API version 1
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", r.healthHandler.HealthCheck)
		v1.GET("/stats", r.statsHandler.Stats)

		photos := v1.Group("/photos")
		{
			photos.POST("", r.photoHandler.Capture)
			photos.GET("/:id", r.photoHandler.GetPhoto)
			photos.POST("/:id/edit", r.photoHandler.Edit)
			photos.POST("/:id/feedback", r.photoHandler.Feedback)
			photos.GET("/:id/feedback", r.photoHandler.ListFeedback)
		}

		v1.POST("/watermark", r.watermarkHandler.Watermark)

		gallery := v1.Group("/gallery")
		{
			gallery.GET("/marquee", r.galleryHandler.Marquee)
			gallery.GET("/stream", r.galleryHandler.Stream)
		}

		costumes := v1.Group("/costumes")
		{
			costumes.GET("", r.photoHandler.Costumes)
			costumes.GET("/random", r.photoHandler.RandomCostumes)
		}
	}

	if r.objectHandler != nil {
		router.GET(storage.LocalObjectsPath+"/*path", r.objectHandler.Serve)
	}

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "OK",
			"message": "AI photobooth is running",
		})
	})

	return router
}
