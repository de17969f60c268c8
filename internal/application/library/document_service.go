package library

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/kenhgt247/me-be-sub001/internal/domain/library"
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DocumentService handles document uploads, moderation and downloads
type DocumentService struct {
	docRepo       library.DocumentRepository
	storage       ObjectStorageService
	presignExpiry time.Duration
	logger        *zap.Logger
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(
	docRepo library.DocumentRepository,
	storage ObjectStorageService,
	presignExpiry time.Duration,
	logger *zap.Logger,
) *DocumentService {
	if presignExpiry <= 0 {
		presignExpiry = 15 * time.Minute
	}
	return &DocumentService{
		docRepo:       docRepo,
		storage:       storage,
		presignExpiry: presignExpiry,
		logger:        logger,
	}
}

// RequestUpload registers a pending document and returns a presigned PUT
// URL the client uploads the file to. The document stays pending until
// an administrator publishes it.
func (s *DocumentService) RequestUpload(ctx context.Context, input RequestUploadInput) (*RequestUploadResult, error) {
	storageKey := buildStorageKey(input.FileName)

	doc, err := library.NewDocument(
		input.UploaderID,
		input.Title,
		input.Description,
		storageKey,
		input.ContentType,
		input.SizeBytes,
	)
	if err != nil {
		return nil, err
	}

	if err := s.docRepo.Save(ctx, doc); err != nil {
		s.logger.Error("Failed to save document", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to register document")
	}

	uploadURL, expiresAt, err := s.storage.GenerateUploadURL(ctx, storageKey, input.ContentType, s.presignExpiry)
	if err != nil {
		s.logger.Error("Failed to presign upload", zap.Error(err), zap.String("storage_key", storageKey))
		return nil, shared.NewDomainError("STORAGE_ERROR", "Failed to prepare upload")
	}

	s.logger.Info("Document upload requested",
		zap.String("document_id", doc.ID.String()),
		zap.String("uploader_id", input.UploaderID.String()))

	return &RequestUploadResult{
		Document:  ToDocumentInfo(doc),
		UploadURL: uploadURL,
		ExpiresAt: expiresAt,
	}, nil
}

// GetBySlug resolves a document from its URL slug. Pending and rejected
// documents are only visible to their uploader, moderators resolve them
// through the review queue instead.
func (s *DocumentService) GetBySlug(ctx context.Context, slug string, viewerID uuid.UUID) (*DocumentInfo, error) {
	publicID := shared.SlugID(slug)
	if publicID == "" {
		return nil, shared.ErrNotFound
	}

	doc, err := s.docRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	if !doc.IsPublished() && !doc.IsUploader(viewerID) {
		return nil, shared.ErrNotFound
	}

	info := ToDocumentInfo(doc)
	return &info, nil
}

// Update edits document metadata. Only the uploader may edit.
func (s *DocumentService) Update(ctx context.Context, input UpdateDocumentInput) (*DocumentInfo, error) {
	doc, err := s.docRepo.FindByID(ctx, input.DocumentID)
	if err != nil {
		return nil, err
	}
	if !doc.IsUploader(input.EditorID) {
		return nil, shared.ErrForbidden
	}

	if err := doc.Update(input.Title, input.Description); err != nil {
		return nil, err
	}

	if err := s.docRepo.Save(ctx, doc); err != nil {
		s.logger.Error("Failed to save document update", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update document")
	}

	info := ToDocumentInfo(doc)
	return &info, nil
}

// List returns one cursor page of published documents
func (s *DocumentService) List(ctx context.Context, req shared.PageRequest) (*shared.Page[DocumentInfo], error) {
	req = req.Normalize()

	docs, err := s.docRepo.FindPage(ctx, req)
	if err != nil {
		return nil, err
	}

	return s.toPage(docs, req.PageSize), nil
}

// ListByStatus returns one cursor page of documents in any status, for
// the admin review queue
func (s *DocumentService) ListByStatus(ctx context.Context, req shared.PageRequest, status library.DocumentStatus) (*shared.Page[DocumentInfo], error) {
	req = req.Normalize()

	docs, err := s.docRepo.FindPageByStatus(ctx, req, status)
	if err != nil {
		return nil, err
	}

	return s.toPage(docs, req.PageSize), nil
}

// Download returns a presigned GET URL for a published document and
// bumps its download counter
func (s *DocumentService) Download(ctx context.Context, documentID uuid.UUID) (*DownloadResult, error) {
	doc, err := s.docRepo.FindByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if !doc.IsPublished() {
		return nil, shared.NewDomainError("NOT_PUBLISHED", "Document is not available for download")
	}

	downloadURL, expiresAt, err := s.storage.GenerateDownloadURL(ctx, doc.StorageKey, s.presignExpiry)
	if err != nil {
		s.logger.Error("Failed to presign download", zap.Error(err), zap.String("storage_key", doc.StorageKey))
		return nil, shared.NewDomainError("STORAGE_ERROR", "Failed to prepare download")
	}

	doc.RecordDownload()
	if err := s.docRepo.Save(ctx, doc); err != nil {
		// The URL is already issued, losing one counter tick is acceptable
		s.logger.Warn("Failed to persist download counter", zap.Error(err))
	}

	return &DownloadResult{DownloadURL: downloadURL, ExpiresAt: expiresAt}, nil
}

// Publish makes a pending document downloadable (admin). The file must
// actually be present in object storage.
func (s *DocumentService) Publish(ctx context.Context, documentID uuid.UUID) (*DocumentInfo, error) {
	doc, err := s.docRepo.FindByID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	exists, err := s.storage.ObjectExists(ctx, doc.StorageKey)
	if err != nil {
		s.logger.Error("Failed to check object", zap.Error(err), zap.String("storage_key", doc.StorageKey))
		return nil, shared.NewDomainError("STORAGE_ERROR", "Failed to verify uploaded file")
	}
	if !exists {
		return nil, shared.NewDomainError("FILE_MISSING", "Document file has not been uploaded")
	}

	if err := doc.Publish(); err != nil {
		return nil, err
	}

	if err := s.docRepo.Save(ctx, doc); err != nil {
		s.logger.Error("Failed to save published document", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to publish document")
	}

	s.logger.Info("Document published", zap.String("document_id", doc.ID.String()))

	info := ToDocumentInfo(doc)
	return &info, nil
}

// Reject declines a pending document and deletes any uploaded file (admin)
func (s *DocumentService) Reject(ctx context.Context, documentID uuid.UUID) (*DocumentInfo, error) {
	doc, err := s.docRepo.FindByID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	if err := doc.Reject(); err != nil {
		return nil, err
	}

	if err := s.docRepo.Save(ctx, doc); err != nil {
		s.logger.Error("Failed to save rejected document", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to reject document")
	}

	if err := s.storage.DeleteObject(ctx, doc.StorageKey); err != nil {
		s.logger.Warn("Failed to delete rejected file", zap.Error(err), zap.String("storage_key", doc.StorageKey))
	}

	s.logger.Info("Document rejected", zap.String("document_id", doc.ID.String()))

	info := ToDocumentInfo(doc)
	return &info, nil
}

// Delete removes a document and its stored file. The uploader may delete
// their own document; admin deletion is gated at the transport layer.
func (s *DocumentService) Delete(ctx context.Context, documentID, requesterID uuid.UUID, isAdmin bool) error {
	doc, err := s.docRepo.FindByID(ctx, documentID)
	if err != nil {
		return err
	}
	if !isAdmin && !doc.IsUploader(requesterID) {
		return shared.ErrForbidden
	}

	if err := s.docRepo.Delete(ctx, documentID); err != nil {
		s.logger.Error("Failed to delete document", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete document")
	}

	if err := s.storage.DeleteObject(ctx, doc.StorageKey); err != nil {
		s.logger.Warn("Failed to delete stored file", zap.Error(err), zap.String("storage_key", doc.StorageKey))
	}

	s.logger.Info("Document deleted", zap.String("document_id", documentID.String()))
	return nil
}

func (s *DocumentService) toPage(docs []library.Document, pageSize int) *shared.Page[DocumentInfo] {
	page := shared.NewPage(docs, pageSize, documentCursor)
	infos := make([]DocumentInfo, len(page.Items))
	for i := range page.Items {
		infos[i] = ToDocumentInfo(&page.Items[i])
	}
	return &shared.Page[DocumentInfo]{
		Items:      infos,
		NextCursor: page.NextCursor,
		HasMore:    page.HasMore,
	}
}

// buildStorageKey namespaces uploads under a fresh random id so user
// supplied file names cannot collide or traverse
func buildStorageKey(fileName string) string {
	base := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, base)
	if base == "" || base == "." {
		base = "file"
	}
	return fmt.Sprintf("documents/%s/%s", shared.NewPublicID(), base)
}
