package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/phambaophuc/ai-photobooth/internal/config"
	"github.com/phambaophuc/ai-photobooth/internal/http/handlers"
	"github.com/phambaophuc/ai-photobooth/internal/http/routes"
	"github.com/phambaophuc/ai-photobooth/internal/services/booth"
	"github.com/phambaophuc/ai-photobooth/internal/services/gallery"
	"github.com/phambaophuc/ai-photobooth/internal/services/generator"
	"github.com/phambaophuc/ai-photobooth/internal/services/processor"
	"github.com/phambaophuc/ai-photobooth/internal/services/queue"
	"github.com/phambaophuc/ai-photobooth/internal/services/records"
	"github.com/phambaophuc/ai-photobooth/internal/services/storage"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Record store
	db, err := records.Open(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	store := records.NewStore(db, cfg.Database.Driver, logger)
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		logger.Fatal("Failed to apply schema", zap.Error(err))
	}

	// Object store
	storageSvc, err := storage.NewStorageService(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize storage service", zap.Error(err))
	}
	defer storageSvc.Close()

	// Watermark compositor
	spec, err := processor.SpecFromConfig(cfg.Watermark)
	if err != nil {
		logger.Fatal("Failed to load watermark resources", zap.Error(err))
	}
	imageProcessor := processor.NewImageProcessor(spec, logger)

	// Generation API, optional so the wall and download pages work without a key
	var gen booth.ImageGenerator
	if cfg.Gemini.APIKey != "" {
		g, err := generator.NewGenerator(ctx, cfg.Gemini, logger)
		if err != nil {
			logger.Fatal("Failed to initialize generator", zap.Error(err))
		}
		gen = g
	} else {
		logger.Warn("GEMINI_API_KEY not set, editing is disabled")
	}

	boothSvc := booth.NewService(storageSvc, store, gen, imageProcessor, cfg, logger)

	// Display rendering queue
	var healthHandler *handlers.HealthHandler
	var statsHandler *handlers.StatsHandler
	queueSvc, err := queue.NewQueueService(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, logger)
	if err != nil {
		logger.Warn("Failed to initialize queue service, rendering display images inline", zap.Error(err))
		healthHandler = handlers.NewHealthHandler(storageSvc, store, nil)
		statsHandler = handlers.NewStatsHandler(storageSvc, nil, logger)
	} else {
		defer queueSvc.Close()
		boothSvc.SetPublisher(queueSvc)
		healthHandler = handlers.NewHealthHandler(storageSvc, store, queueSvc)
		statsHandler = handlers.NewStatsHandler(storageSvc, queueSvc, logger)

		for i := 1; i <= cfg.RabbitMQ.Workers; i++ {
			if err := queueSvc.StartWorker(ctx, i, boothSvc.HandleJob); err != nil {
				logger.Fatal("Failed to start worker", zap.Int("worker_id", i), zap.Error(err))
			}
		}
	}

	// Gallery wall
	gallerySvc := gallery.NewService(store, storageSvc, cfg, logger)
	events, unsubscribe := store.Subscribe()
	defer unsubscribe()
	go gallerySvc.Watch(ctx, events)

	// Initialize handlers
	h := routes.Handlers{
		Photo:     handlers.NewPhotoHandler(boothSvc, logger),
		Compat:    handlers.NewCompatHandler(boothSvc, storageSvc, logger),
		Gallery:   handlers.NewGalleryHandler(gallerySvc, logger),
		Watermark: handlers.NewWatermarkHandler(imageProcessor, cfg.Storage.MaxFileSize, logger),
		Health:    healthHandler,
		Stats:     statsHandler,
	}
	if local := storageSvc.LocalBucket(); local != nil {
		h.Objects = handlers.NewObjectHandler(local)
	}

	// base64 payloads run a third over the decoded size, plus the JSON around them
	router := routes.NewRouter(h, cfg.Storage.MaxFileSize*2, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		Handler:      router.SetupRoutes(),
		// cancelling ctx also ends open gallery streams
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	// Start server
	go func() {
		logger.Info("Starting server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// stop workers and the gallery watcher first so open streams can end
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
