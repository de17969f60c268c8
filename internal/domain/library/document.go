package library

import (
	"strings"
	"time"

	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
)

// DocumentStatus represents the review state of an uploaded document
type DocumentStatus string

const (
	DocumentStatusPending   DocumentStatus = "pending"
	DocumentStatusPublished DocumentStatus = "published"
	DocumentStatusRejected  DocumentStatus = "rejected"
)

const (
	maxDocTitleLength = 200
	maxFileSizeBytes  = 50 << 20
)

var allowedContentTypes = map[string]struct{}{
	"application/pdf": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": {},
	"application/epub+zip": {},
}

// Document is a downloadable resource (ebook, checklist, guide) in the
// shared library. Files live in object storage under StorageKey; uploads
// land in pending state until an administrator publishes them.
type Document struct {
	shared.BaseAggregateRoot
	PublicID    string         `gorm:"type:varchar(32);uniqueIndex;not null"`
	Title       string         `gorm:"type:varchar(200);not null"`
	Slug        string         `gorm:"type:varchar(250);uniqueIndex;not null"`
	Description string         `gorm:"type:text"`
	UploaderID  uuid.UUID      `gorm:"type:uuid;not null;index"`
	StorageKey  string         `gorm:"type:varchar(500);not null"`
	ContentType string         `gorm:"type:varchar(100);not null"`
	SizeBytes   int64          `gorm:"not null"`
	Status      DocumentStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	Downloads   int64          `gorm:"not null;default:0"`
	RatingSum   int64          `gorm:"not null;default:0"`
	RatingCount int64          `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Document) TableName() string {
	return "documents"
}

// NewDocument registers an uploaded file as a pending document
func NewDocument(uploaderID uuid.UUID, title, description, storageKey, contentType string, sizeBytes int64) (*Document, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Document title cannot be empty")
	}
	if len(trimmed) > maxDocTitleLength {
		return nil, shared.NewDomainError("INVALID_TITLE", "Document title cannot exceed 200 characters")
	}
	if strings.TrimSpace(storageKey) == "" {
		return nil, shared.NewDomainError("INVALID_FILE", "Document storage key cannot be empty")
	}
	if _, ok := allowedContentTypes[contentType]; !ok {
		return nil, shared.NewDomainError("UNSUPPORTED_TYPE", "Document content type is not supported")
	}
	if sizeBytes <= 0 || sizeBytes > maxFileSizeBytes {
		return nil, shared.NewDomainError("INVALID_FILE", "Document size must be between 1 byte and 50 MiB")
	}

	publicID := shared.NewPublicID()
	doc := &Document{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PublicID:          publicID,
		Title:             trimmed,
		Slug:              shared.SlugWithID(trimmed, publicID),
		Description:       strings.TrimSpace(description),
		UploaderID:        uploaderID,
		StorageKey:        storageKey,
		ContentType:       contentType,
		SizeBytes:         sizeBytes,
		Status:            DocumentStatusPending,
	}

	doc.AddDomainEvent(NewDocumentUploadedEvent(doc))

	return doc, nil
}

// Update edits title and description of a not-yet-rejected document
func (d *Document) Update(title, description string) error {
	if d.Status == DocumentStatusRejected {
		return shared.ErrInvalidState
	}
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_TITLE", "Document title cannot be empty")
	}
	if len(trimmed) > maxDocTitleLength {
		return shared.NewDomainError("INVALID_TITLE", "Document title cannot exceed 200 characters")
	}

	d.Title = trimmed
	d.Slug = shared.SlugWithID(trimmed, d.PublicID)
	d.Description = strings.TrimSpace(description)
	d.UpdatedAt = time.Now()
	d.IncrementVersion()
	return nil
}

// Publish makes a pending document downloadable
func (d *Document) Publish() error {
	if d.Status != DocumentStatusPending {
		return shared.NewDomainError("NOT_PENDING", "Only pending documents can be published")
	}
	d.Status = DocumentStatusPublished
	d.UpdatedAt = time.Now()
	d.IncrementVersion()
	d.AddDomainEvent(NewDocumentPublishedEvent(d))
	return nil
}

// Reject declines a pending document
func (d *Document) Reject() error {
	if d.Status != DocumentStatusPending {
		return shared.NewDomainError("NOT_PENDING", "Only pending documents can be rejected")
	}
	d.Status = DocumentStatusRejected
	d.UpdatedAt = time.Now()
	d.IncrementVersion()
	return nil
}

// RecordDownload bumps the download counter
func (d *Document) RecordDownload() {
	d.Downloads++
	d.UpdatedAt = time.Now()
	d.IncrementVersion()
}

// RecordRating folds a new review score into the aggregates
func (d *Document) RecordRating(score int) {
	d.RatingSum += int64(score)
	d.RatingCount++
	d.UpdatedAt = time.Now()
	d.IncrementVersion()
}

// AverageRating returns the mean review score, or 0 with no reviews
func (d *Document) AverageRating() float64 {
	if d.RatingCount == 0 {
		return 0
	}
	return float64(d.RatingSum) / float64(d.RatingCount)
}

// IsPublished reports whether the document is downloadable
func (d *Document) IsPublished() bool {
	return d.Status == DocumentStatusPublished
}

// IsUploader reports whether the given user uploaded the document
func (d *Document) IsUploader(userID uuid.UUID) bool {
	return d.UploaderID == userID
}
