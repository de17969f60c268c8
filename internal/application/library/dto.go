package library

import (
	"time"

	"github.com/kenhgt247/me-be-sub001/internal/domain/library"
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
)

// RequestUploadInput contains input for reserving a document upload
type RequestUploadInput struct {
	UploaderID  uuid.UUID
	Title       string
	Description string
	FileName    string
	ContentType string
	SizeBytes   int64
}

// RequestUploadResult carries the presigned PUT URL for the client
type RequestUploadResult struct {
	Document  DocumentInfo `json:"document"`
	UploadURL string       `json:"upload_url"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// UpdateDocumentInput contains input for editing document metadata
type UpdateDocumentInput struct {
	DocumentID  uuid.UUID
	EditorID    uuid.UUID
	Title       string
	Description string
}

// DownloadResult carries the presigned GET URL for the client
type DownloadResult struct {
	DownloadURL string    `json:"download_url"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// SubmitReviewInput contains input for rating a document
type SubmitReviewInput struct {
	DocumentID uuid.UUID
	AuthorID   uuid.UUID
	Score      int
	Comment    string
}

// DocumentInfo is the public projection of a document
type DocumentInfo struct {
	ID            uuid.UUID `json:"id"`
	PublicID      string    `json:"public_id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description,omitempty"`
	UploaderID    uuid.UUID `json:"uploader_id"`
	ContentType   string    `json:"content_type"`
	SizeBytes     int64     `json:"size_bytes"`
	Status        string    `json:"status"`
	Downloads     int64     `json:"downloads"`
	AverageRating float64   `json:"average_rating"`
	RatingCount   int64     `json:"rating_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToDocumentInfo maps a document aggregate to its projection
func ToDocumentInfo(d *library.Document) DocumentInfo {
	return DocumentInfo{
		ID:            d.ID,
		PublicID:      d.PublicID,
		Title:         d.Title,
		Slug:          d.Slug,
		Description:   d.Description,
		UploaderID:    d.UploaderID,
		ContentType:   d.ContentType,
		SizeBytes:     d.SizeBytes,
		Status:        string(d.Status),
		Downloads:     d.Downloads,
		AverageRating: d.AverageRating(),
		RatingCount:   d.RatingCount,
		CreatedAt:     d.CreatedAt,
	}
}

// ReviewInfo is the projection of a document review
type ReviewInfo struct {
	ID         uuid.UUID `json:"id"`
	DocumentID uuid.UUID `json:"document_id"`
	AuthorID   uuid.UUID `json:"author_id"`
	Score      int       `json:"score"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToReviewInfo maps a review to its projection
func ToReviewInfo(r *library.Review) ReviewInfo {
	return ReviewInfo{
		ID:         r.ID,
		DocumentID: r.DocumentID,
		AuthorID:   r.AuthorID,
		Score:      r.Score,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// documentCursor builds the keyset cursor for a document row
func documentCursor(d library.Document) shared.Cursor {
	return shared.EncodeCursor(d.CreatedAt, d.ID)
}
