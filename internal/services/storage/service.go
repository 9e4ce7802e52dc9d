package storage

import (
	"fmt"
	"time"

	"github.com/phambaophuc/ai-photobooth/internal/config"
	"github.com/redis/go-redis/v9"
	storage_go "github.com/supabase-community/storage-go"
	"go.uber.org/zap"
)

type StorageService struct {
	bucket        Bucket
	redisClient   *redis.Client
	cacheDuration time.Duration
	galleryFolder string
	galleryLimit  int
	logger        *zap.Logger
}

// NewStorageService connects to Supabase storage, or keeps objects in memory
// and serves them from this server when SUPABASE_URL is unset.
func NewStorageService(cfg *config.Config, logger *zap.Logger) (*StorageService, error) {
	var bucket Bucket
	if cfg.Supabase.URL == "" {
		logger.Warn("SUPABASE_URL not set, keeping objects in memory")
		bucket = NewMemoryBucket(cfg.Server.PublicURL + LocalObjectsPath)
	} else {
		if cfg.Supabase.KEY == "" {
			return nil, fmt.Errorf("SUPABASE_KEY is required when SUPABASE_URL is set")
		}
		sbClient := storage_go.NewClient(cfg.Supabase.URL+"/storage/v1", cfg.Supabase.KEY, nil)
		bucket = &supabaseBucket{client: sbClient, name: cfg.Supabase.BUCKET}
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	return NewWithBucket(bucket, redisClient, cfg.Storage, logger), nil
}

// NewWithBucket builds the service over any Bucket. redisClient may be nil to
// disable caching.
func NewWithBucket(bucket Bucket, redisClient *redis.Client, cfg config.StorageConfig, logger *zap.Logger) *StorageService {
	folder := cfg.OriginalFolder
	if folder == "" {
		folder = "original"
	}
	limit := cfg.GalleryLimit
	if limit <= 0 {
		limit = 100
	}

	return &StorageService{
		bucket:        bucket,
		redisClient:   redisClient,
		cacheDuration: cfg.CacheDuration,
		galleryFolder: folder,
		galleryLimit:  limit,
		logger:        logger,
	}
}

// LocalBucket returns the in-memory bucket, or nil when objects live in Supabase.
func (s *StorageService) LocalBucket() *MemoryBucket {
	mb, _ := s.bucket.(*MemoryBucket)
	return mb
}

func (s *StorageService) Close() error {
	if s.redisClient != nil {
		return s.redisClient.Close()
	}
	return nil
}
