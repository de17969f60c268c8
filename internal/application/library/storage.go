package library

import (
	"context"
	"time"
)

// ObjectStorageService abstracts presigned-URL object storage for
// document files. The S3 implementation lives in infrastructure/storage.
type ObjectStorageService interface {
	// GenerateUploadURL returns a presigned PUT URL for the given key.
	// The client must upload with the exact content type.
	GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error)

	// GenerateDownloadURL returns a presigned GET URL for the given key
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)

	// DeleteObject removes the object; deleting a missing key is not an error
	DeleteObject(ctx context.Context, storageKey string) error

	// ObjectExists reports whether the key holds an uploaded object
	ObjectExists(ctx context.Context, storageKey string) (bool, error)

	// Upload writes data directly, used by tooling and tests
	Upload(ctx context.Context, storageKey string, data []byte, contentType string) error
}
