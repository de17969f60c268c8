package handler

import (
	"github.com/kenhgt247/me-be-sub001/internal/application/library"
	"github.com/kenhgt247/me-be-sub001/internal/domain/identity"
	domainlibrary "github.com/kenhgt247/me-be-sub001/internal/domain/library"
	"github.com/kenhgt247/me-be-sub001/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DocumentHandler handles document library HTTP requests
type DocumentHandler struct {
	BaseHandler
	documentService *library.DocumentService
	reviewService   *library.ReviewService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService *library.DocumentService, reviewService *library.ReviewService) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		reviewService:   reviewService,
	}
}

// RequestUploadRequest represents the request body for reserving an upload
type RequestUploadRequest struct {
	Title       string `json:"title" binding:"required,min=5,max=200"`
	Description string `json:"description" binding:"max=2000"`
	FileName    string `json:"file_name" binding:"required,max=255"`
	ContentType string `json:"content_type" binding:"required,max=100"`
	SizeBytes   int64  `json:"size_bytes" binding:"required,min=1"`
}

// UpdateDocumentRequest represents the request body for editing document metadata
type UpdateDocumentRequest struct {
	Title       string `json:"title" binding:"required,min=5,max=200"`
	Description string `json:"description" binding:"max=2000"`
}

// SubmitReviewRequest represents the request body for rating a document
type SubmitReviewRequest struct {
	Score   int    `json:"score" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=2000"`
}

// RequestUpload reserves a document and returns a presigned PUT URL
func (h *DocumentHandler) RequestUpload(c *gin.Context) {
	var req RequestUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.documentService.RequestUpload(c.Request.Context(), library.RequestUploadInput{
		UploaderID:  userID,
		Title:       req.Title,
		Description: req.Description,
		FileName:    req.FileName,
		ContentType: req.ContentType,
		SizeBytes:   req.SizeBytes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// List returns a page of published documents
func (h *DocumentHandler) List(c *gin.Context) {
	req, ok := h.bindPageRequest(c)
	if !ok {
		return
	}

	req = req.Normalize()
	page, err := h.documentService.List(c.Request.Context(), req)
	PageOrEmpty(&h.BaseHandler, c, page, req.PageSize, err)
}

// ListByStatus returns a page of documents in the given review state
func (h *DocumentHandler) ListByStatus(c *gin.Context) {
	req, ok := h.bindPageRequest(c)
	if !ok {
		return
	}

	status := domainlibrary.DocumentStatus(c.DefaultQuery("status", string(domainlibrary.DocumentStatusPending)))
	switch status {
	case domainlibrary.DocumentStatusPending, domainlibrary.DocumentStatusPublished, domainlibrary.DocumentStatusRejected:
	default:
		h.BadRequest(c, "Invalid document status")
		return
	}

	req = req.Normalize()
	page, err := h.documentService.ListByStatus(c.Request.Context(), req, status)
	PageOrEmpty(&h.BaseHandler, c, page, req.PageSize, err)
}

// GetBySlug returns a document. Pending and rejected documents are
// visible only to their uploader.
func (h *DocumentHandler) GetBySlug(c *gin.Context) {
	viewerID := uuid.Nil
	if id := getOptionalUserID(c); id != nil {
		viewerID = *id
	}

	info, err := h.documentService.GetBySlug(c.Request.Context(), c.Param("slug"), viewerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}

// Update edits a document's metadata
func (h *DocumentHandler) Update(c *gin.Context) {
	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid document id")
		return
	}

	var req UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	info, err := h.documentService.Update(c.Request.Context(), library.UpdateDocumentInput{
		DocumentID:  documentID,
		EditorID:    userID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}

// Download returns a presigned GET URL for a published document
func (h *DocumentHandler) Download(c *gin.Context) {
	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid document id")
		return
	}

	result, err := h.documentService.Download(c.Request.Context(), documentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Publish approves a pending document
func (h *DocumentHandler) Publish(c *gin.Context) {
	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid document id")
		return
	}

	info, err := h.documentService.Publish(c.Request.Context(), documentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}

// Reject declines a pending document and cleans up its object
func (h *DocumentHandler) Reject(c *gin.Context) {
	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid document id")
		return
	}

	info, err := h.documentService.Reject(c.Request.Context(), documentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}

// Delete removes a document. Uploaders may delete their own; admins any.
func (h *DocumentHandler) Delete(c *gin.Context) {
	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid document id")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	isAdmin := middleware.GetJWTRole(c) == string(identity.RoleAdmin)
	if err := h.documentService.Delete(c.Request.Context(), documentID, userID, isAdmin); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// SubmitReview rates a published document, replacing any earlier rating
// by the same member
func (h *DocumentHandler) SubmitReview(c *gin.Context) {
	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid document id")
		return
	}

	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	info, err := h.reviewService.Submit(c.Request.Context(), library.SubmitReviewInput{
		DocumentID: documentID,
		AuthorID:   userID,
		Score:      req.Score,
		Comment:    req.Comment,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}

// ListReviews returns a document's reviews, selected by document_id query
func (h *DocumentHandler) ListReviews(c *gin.Context) {
	documentID, err := uuid.Parse(c.Query("document_id"))
	if err != nil {
		h.BadRequest(c, "Invalid document id")
		return
	}

	infos, err := h.reviewService.ListByDocument(c.Request.Context(), documentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, infos)
}
