package storage

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// LocalObjectsPath is where the HTTP server exposes a MemoryBucket.
const LocalObjectsPath = "/objects"

// MemoryBucket keeps objects in process. It backs local runs without Supabase
// and the tests.
type MemoryBucket struct {
	mu        sync.RWMutex
	objects   map[string]memoryObject
	publicURL string
}

type memoryObject struct {
	data        []byte
	contentType string
}

func NewMemoryBucket(publicURL string) *MemoryBucket {
	return &MemoryBucket{
		objects:   make(map[string]memoryObject),
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

func (b *MemoryBucket) Name() string {
	return "memory"
}

func (b *MemoryBucket) Upload(path string, data []byte, contentType string) error {
	if path == "" {
		return fmt.Errorf("empty object path")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.objects[path] = memoryObject{data: append([]byte(nil), data...), contentType: contentType}
	return nil
}

func (b *MemoryBucket) Download(path string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	obj, ok := b.objects[path]
	if !ok {
		return nil, fmt.Errorf("object %s not found", path)
	}
	return append([]byte(nil), obj.data...), nil
}

func (b *MemoryBucket) ContentType(path string) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.objects[path].contentType
}

func (b *MemoryBucket) Remove(paths []string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, p := range paths {
		delete(b.objects, p)
	}
	return nil
}

func (b *MemoryBucket) List(folder string, limit, offset int) ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	prefix := strings.Trim(folder, "/")
	if prefix != "" {
		prefix += "/"
	}

	var names []string
	for p := range b.objects {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		name := strings.TrimPrefix(p, prefix)
		if strings.Contains(name, "/") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	if offset > len(names) {
		offset = len(names)
	}
	names = names[offset:]
	if limit > 0 && limit < len(names) {
		names = names[:limit]
	}
	return names, nil
}

func (b *MemoryBucket) PublicURL(path string) string {
	return b.publicURL + "/" + path
}
