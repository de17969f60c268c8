package library

import (
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constants
const (
	AggregateTypeDocument = "Document"
)

// Event type constants
const (
	EventTypeDocumentUploaded  = "DocumentUploaded"
	EventTypeDocumentPublished = "DocumentPublished"
)

// DocumentUploadedEvent is published when a file upload is registered
type DocumentUploadedEvent struct {
	shared.BaseDomainEvent
	DocumentID uuid.UUID `json:"document_id"`
	PublicID   string    `json:"public_id"`
	Title      string    `json:"title"`
	UploaderID uuid.UUID `json:"uploader_id"`
	SizeBytes  int64     `json:"size_bytes"`
}

// NewDocumentUploadedEvent creates a new DocumentUploadedEvent
func NewDocumentUploadedEvent(d *Document) *DocumentUploadedEvent {
	return &DocumentUploadedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDocumentUploaded, AggregateTypeDocument, d.ID),
		DocumentID:      d.ID,
		PublicID:        d.PublicID,
		Title:           d.Title,
		UploaderID:      d.UploaderID,
		SizeBytes:       d.SizeBytes,
	}
}

// DocumentPublishedEvent is published when moderation approves a document
type DocumentPublishedEvent struct {
	shared.BaseDomainEvent
	DocumentID uuid.UUID `json:"document_id"`
	Slug       string    `json:"slug"`
}

// NewDocumentPublishedEvent creates a new DocumentPublishedEvent
func NewDocumentPublishedEvent(d *Document) *DocumentPublishedEvent {
	return &DocumentPublishedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDocumentPublished, AggregateTypeDocument, d.ID),
		DocumentID:      d.ID,
		Slug:            d.Slug,
	}
}
