package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	libraryapp "github.com/kenhgt247/me-be-sub001/internal/application/library"
)

// Ensure StubObjectStorage implements ObjectStorageService
var _ libraryapp.ObjectStorageService = (*StubObjectStorage)(nil)

// StubObjectStorage is an in-memory ObjectStorageService for tests and
// local development without an S3 backend. Presigned URLs are fake and
// not fetchable.
type StubObjectStorage struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// NewStubObjectStorage creates an empty in-memory object store
func NewStubObjectStorage() *StubObjectStorage {
	return &StubObjectStorage{objects: make(map[string][]byte)}
}

// GenerateUploadURL returns a fake upload URL and records the key as
// present so a follow-up ObjectExists check passes
func (s *StubObjectStorage) GenerateUploadURL(_ context.Context, storageKey, _ string, expiresIn time.Duration) (string, time.Time, error) {
	if expiresIn <= 0 {
		expiresIn = 15 * time.Minute
	}
	s.mu.Lock()
	s.objects[storageKey] = nil
	s.mu.Unlock()
	return fmt.Sprintf("https://stub.local/upload/%s", storageKey), time.Now().Add(expiresIn), nil
}

// GenerateDownloadURL returns a fake download URL
func (s *StubObjectStorage) GenerateDownloadURL(_ context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error) {
	if expiresIn <= 0 {
		expiresIn = 15 * time.Minute
	}
	return fmt.Sprintf("https://stub.local/download/%s", storageKey), time.Now().Add(expiresIn), nil
}

// DeleteObject removes the key
func (s *StubObjectStorage) DeleteObject(_ context.Context, storageKey string) error {
	s.mu.Lock()
	delete(s.objects, storageKey)
	s.mu.Unlock()
	return nil
}

// ObjectExists reports whether the key was uploaded or written
func (s *StubObjectStorage) ObjectExists(_ context.Context, storageKey string) (bool, error) {
	s.mu.RLock()
	_, ok := s.objects[storageKey]
	s.mu.RUnlock()
	return ok, nil
}

// Upload stores the data in memory
func (s *StubObjectStorage) Upload(_ context.Context, storageKey string, data []byte, _ string) error {
	s.mu.Lock()
	s.objects[storageKey] = data
	s.mu.Unlock()
	return nil
}
