package persistence

import (
	"context"
	"errors"

	"github.com/kenhgt247/me-be-sub001/internal/domain/library"
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDocumentRepository implements DocumentRepository using GORM
type GormDocumentRepository struct {
	db *gorm.DB
}

// NewGormDocumentRepository creates a new GormDocumentRepository
func NewGormDocumentRepository(db *gorm.DB) *GormDocumentRepository {
	return &GormDocumentRepository{db: db}
}

// FindByID finds a document by its ID
func (r *GormDocumentRepository) FindByID(ctx context.Context, id uuid.UUID) (*library.Document, error) {
	var doc library.Document
	if err := r.db.WithContext(ctx).First(&doc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// FindByPublicID finds a document by the id recovered from a URL slug
func (r *GormDocumentRepository) FindByPublicID(ctx context.Context, publicID string) (*library.Document, error) {
	var doc library.Document
	if err := r.db.WithContext(ctx).First(&doc, "public_id = ?", publicID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// FindPage returns one cursor page of published documents
func (r *GormDocumentRepository) FindPage(ctx context.Context, req shared.PageRequest) ([]library.Document, error) {
	return r.findPage(ctx, req, library.DocumentStatusPublished)
}

// FindPageByStatus returns one cursor page filtered on any status
func (r *GormDocumentRepository) FindPageByStatus(ctx context.Context, req shared.PageRequest, status library.DocumentStatus) ([]library.Document, error) {
	return r.findPage(ctx, req, status)
}

func (r *GormDocumentRepository) findPage(ctx context.Context, req shared.PageRequest, status library.DocumentStatus) ([]library.Document, error) {
	q := r.db.WithContext(ctx).Model(&library.Document{})

	if status != "" {
		q = q.Where("status = ?", status)
	}
	if req.Search != "" {
		pattern := "%" + req.Search + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	q, err := pageScope(q, req)
	if err != nil {
		return nil, err
	}

	var docs []library.Document
	if err := q.Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// Save creates or updates a document
func (r *GormDocumentRepository) Save(ctx context.Context, document *library.Document) error {
	return r.db.WithContext(ctx).Save(document).Error
}

// Delete removes a document
func (r *GormDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&library.Document{}, "id = ?", id).Error
}

// GormReviewRepository implements ReviewRepository using GORM
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GormReviewRepository
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// FindByID finds a review by its ID
func (r *GormReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*library.Review, error) {
	var review library.Review
	if err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

// FindByDocumentAndAuthor returns the author's existing review on a
// document
func (r *GormReviewRepository) FindByDocumentAndAuthor(ctx context.Context, documentID, authorID uuid.UUID) (*library.Review, error) {
	var review library.Review
	if err := r.db.WithContext(ctx).
		Where("document_id = ? AND author_id = ?", documentID, authorID).
		First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

// FindByDocument returns all reviews on a document, newest first
func (r *GormReviewRepository) FindByDocument(ctx context.Context, documentID uuid.UUID) ([]library.Review, error) {
	var reviews []library.Review
	if err := r.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// Save creates or updates a review
func (r *GormReviewRepository) Save(ctx context.Context, review *library.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}
