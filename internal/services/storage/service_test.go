package storage

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/phambaophuc/ai-photobooth/internal/config"
	"github.com/phambaophuc/ai-photobooth/internal/models"
	"go.uber.org/zap"
)

type failingBucket struct {
	*MemoryBucket
}

func (failingBucket) Upload(string, []byte, string) error {
	return errors.New("bucket offline")
}

func (failingBucket) List(string, int, int) ([]string, error) {
	return nil, errors.New("bucket offline")
}

func newTestService(b Bucket) *StorageService {
	return NewWithBucket(b, nil, config.StorageConfig{
		OriginalFolder: "original",
		GalleryLimit:   3,
	}, zap.NewNop())
}

func TestStorageService_Upload(t *testing.T) {
	bucket := NewMemoryBucket("https://cdn.test/ai-pb/")
	s := newTestService(bucket)
	ctx := context.Background()

	t.Run("returns public url", func(t *testing.T) {
		url, err := s.Upload(ctx, "original/a.png", []byte("png"), "image/png")
		if err != nil {
			t.Fatalf("Upload() error = %v", err)
		}
		if url != "https://cdn.test/ai-pb/original/a.png" {
			t.Errorf("url = %v", url)
		}
		if ct := bucket.ContentType("original/a.png"); ct != "image/png" {
			t.Errorf("content type = %v, want image/png", ct)
		}
	})

	t.Run("upsert replaces content", func(t *testing.T) {
		if _, err := s.Upload(ctx, "original/a.png", []byte("v2"), "image/png"); err != nil {
			t.Fatalf("Upload() error = %v", err)
		}
		data, err := s.Download(ctx, "original/a.png")
		if err != nil {
			t.Fatalf("Download() error = %v", err)
		}
		if string(data) != "v2" {
			t.Errorf("data = %q, want v2", data)
		}
	})

	t.Run("bucket failure is wrapped", func(t *testing.T) {
		_, err := newTestService(failingBucket{bucket}).Upload(ctx, "x.png", nil, "image/png")
		if err == nil || !strings.Contains(err.Error(), "bucket offline") {
			t.Errorf("Upload() error = %v", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if _, err := s.Upload(cctx, "original/b.png", nil, "image/png"); !errors.Is(err, context.Canceled) {
			t.Errorf("Upload() error = %v, want context.Canceled", err)
		}
	})
}

func TestStorageService_GalleryOriginals(t *testing.T) {
	bucket := NewMemoryBucket("https://cdn.test")
	s := newTestService(bucket)
	ctx := context.Background()

	for _, p := range []string{
		"original/c.png", "original/a.png", "original/b.png", "original/d.png",
		"original/.emptyFolderPlaceholder", "edited/a.png",
	} {
		if err := bucket.Upload(p, []byte("x"), "image/png"); err != nil {
			t.Fatalf("Upload() error = %v", err)
		}
	}

	urls, err := s.GalleryOriginals(ctx)
	if err != nil {
		t.Fatalf("GalleryOriginals() error = %v", err)
	}

	// ".emptyFolderPlaceholder" sorts first and is dropped after the limit applies
	want := []string{"https://cdn.test/original/a.png", "https://cdn.test/original/b.png"}
	if !reflect.DeepEqual(urls, want) {
		t.Errorf("GalleryOriginals() = %v, want %v", urls, want)
	}

	if _, err := newTestService(failingBucket{bucket}).GalleryOriginals(ctx); err == nil {
		t.Error("expected error from failing bucket")
	}
}

func TestStorageService_UploadMultiple(t *testing.T) {
	bucket := NewMemoryBucket("https://cdn.test")
	s := newTestService(bucket)

	urls, err := s.UploadMultiple(context.Background(), []UploadFile{
		{Path: "display/1_original.png", Data: []byte("a"), ContentType: "image/png"},
		{Path: "display/1_edited.png", Data: []byte("b"), ContentType: "image/png"},
	})
	if err != nil {
		t.Fatalf("UploadMultiple() error = %v", err)
	}

	want := []string{"https://cdn.test/display/1_original.png", "https://cdn.test/display/1_edited.png"}
	if !reflect.DeepEqual(urls, want) {
		t.Errorf("UploadMultiple() = %v, want %v", urls, want)
	}

	_, err = newTestService(failingBucket{bucket}).UploadMultiple(context.Background(), []UploadFile{{Path: "x"}})
	if err == nil || !strings.Contains(err.Error(), "failed to upload 1 files") {
		t.Errorf("UploadMultiple() error = %v", err)
	}
}

func TestStorageService_HealthCheck(t *testing.T) {
	status := newTestService(NewMemoryBucket("")).HealthCheck(context.Background())
	if status["redis"] != models.StatusNotConfigured {
		t.Errorf("redis = %v", status["redis"])
	}
	if status["supabase"] != models.StatusHealthy {
		t.Errorf("supabase = %v", status["supabase"])
	}

	status = newTestService(failingBucket{NewMemoryBucket("")}).HealthCheck(context.Background())
	if !strings.HasPrefix(status["supabase"], models.StatusUnhealthy) {
		t.Errorf("supabase = %v, want unhealthy", status["supabase"])
	}
}

func TestGenerateCacheKey(t *testing.T) {
	a := GenerateCacheKey("ai-pb", "original", "100", "0")
	b := GenerateCacheKey("ai-pb", "original", "100", "0")
	c := GenerateCacheKey("ai-pb", "edited", "100", "0")

	if a != b {
		t.Error("same parts should give the same key")
	}
	if a == c {
		t.Error("different parts should give different keys")
	}
	if !strings.HasPrefix(a, "gallery_cache:") {
		t.Errorf("key = %v, want gallery_cache: prefix", a)
	}
}

func TestNewStorageService_LocalFallback(t *testing.T) {
	cfg := &config.Config{
		Server:  config.ServerConfig{PublicURL: "http://localhost:8080"},
		Storage: config.StorageConfig{OriginalFolder: "original"},
	}

	s, err := NewStorageService(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("NewStorageService() error = %v", err)
	}
	defer s.Close()

	if s.LocalBucket() == nil {
		t.Fatal("LocalBucket() = nil, want memory bucket without SUPABASE_URL")
	}
	if got := s.PublicURL("original/a.png"); got != "http://localhost:8080/objects/original/a.png" {
		t.Errorf("PublicURL() = %v", got)
	}

	cfg.Supabase.URL = "https://example.supabase.co"
	if _, err := NewStorageService(cfg, zap.NewNop()); err == nil {
		t.Error("expected error when SUPABASE_KEY is missing")
	}
}
