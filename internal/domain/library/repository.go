package library

import (
	"context"

	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
)

// DocumentRepository defines the interface for document persistence
type DocumentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Document, error)

	// FindByPublicID resolves the id recovered from a URL slug
	FindByPublicID(ctx context.Context, publicID string) (*Document, error)

	// FindPage returns one cursor page of published documents ordered by
	// created_at DESC, id DESC. Search matches title and description.
	FindPage(ctx context.Context, req shared.PageRequest) ([]Document, error)

	// FindPageByStatus behaves like FindPage but filters on any status,
	// for the admin review queue
	FindPageByStatus(ctx context.Context, req shared.PageRequest, status DocumentStatus) ([]Document, error)

	Save(ctx context.Context, document *Document) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReviewRepository defines the interface for review persistence
type ReviewRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Review, error)

	// FindByDocumentAndAuthor returns the author's existing review on a
	// document, or shared.ErrNotFound
	FindByDocumentAndAuthor(ctx context.Context, documentID, authorID uuid.UUID) (*Review, error)

	// FindByDocument returns all reviews on a document, newest first
	FindByDocument(ctx context.Context, documentID uuid.UUID) ([]Review, error)

	Save(ctx context.Context, review *Review) error
}
