package storage

import (
	"bytes"
	"fmt"

	storage_go "github.com/supabase-community/storage-go"
)

// Bucket is the object store surface the booth needs.
type Bucket interface {
	Upload(path string, data []byte, contentType string) error
	Download(path string) ([]byte, error)
	Remove(paths []string) error
	List(folder string, limit, offset int) ([]string, error)
	PublicURL(path string) string
	Name() string
}

type supabaseBucket struct {
	client *storage_go.Client
	name   string
}

func (b *supabaseBucket) Name() string {
	return b.name
}

// Upload overwrites any object already stored under path.
func (b *supabaseBucket) Upload(path string, data []byte, contentType string) error {
	upsert := true
	_, err := b.client.UploadFile(b.name, path, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	return err
}

func (b *supabaseBucket) Download(path string) ([]byte, error) {
	return b.client.DownloadFile(b.name, path)
}

func (b *supabaseBucket) Remove(paths []string) error {
	_, err := b.client.RemoveFile(b.name, paths)
	return err
}

// List returns object names in folder sorted by name ascending.
func (b *supabaseBucket) List(folder string, limit, offset int) ([]string, error) {
	files, err := b.client.ListFiles(b.name, folder, storage_go.FileSearchOptions{
		Limit:  limit,
		Offset: offset,
		SortByOptions: storage_go.SortBy{
			Column: "name",
			Order:  "asc",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", folder, err)
	}

	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	return names, nil
}

func (b *supabaseBucket) PublicURL(path string) string {
	return b.client.GetPublicUrl(b.name, path).SignedURL
}
