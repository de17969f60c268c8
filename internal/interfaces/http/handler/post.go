package handler

import (
	"github.com/kenhgt247/me-be-sub001/internal/application/blog"
	"github.com/kenhgt247/me-be-sub001/internal/domain/identity"
	"github.com/kenhgt247/me-be-sub001/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PostHandler handles blog post HTTP requests
type PostHandler struct {
	BaseHandler
	postService *blog.PostService
}

// NewPostHandler creates a new post handler
func NewPostHandler(postService *blog.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// PostRequest represents the request body for creating or updating a post
type PostRequest struct {
	Title    string `json:"title" binding:"required,min=5,max=200"`
	Excerpt  string `json:"excerpt" binding:"max=500"`
	Content  string `json:"content" binding:"required,min=10"`
	CoverURL string `json:"cover_url" binding:"omitempty,url,max=500"`
}

// isEditor reports whether the caller may see non-published posts
func isEditor(c *gin.Context) bool {
	return middleware.GetJWTRole(c) == string(identity.RoleAdmin)
}

// List returns a page of published posts
func (h *PostHandler) List(c *gin.Context) {
	req, ok := h.bindPageRequest(c)
	if !ok {
		return
	}

	req = req.Normalize()
	page, err := h.postService.List(c.Request.Context(), req)
	PageOrEmpty(&h.BaseHandler, c, page, req.PageSize, err)
}

// ListForEditors returns a page of posts in any status
func (h *PostHandler) ListForEditors(c *gin.Context) {
	req, ok := h.bindPageRequest(c)
	if !ok {
		return
	}

	req = req.Normalize()
	page, err := h.postService.ListForEditors(c.Request.Context(), req)
	PageOrEmpty(&h.BaseHandler, c, page, req.PageSize, err)
}

// GetBySlug returns a post. Drafts and archived posts are editor-only.
func (h *PostHandler) GetBySlug(c *gin.Context) {
	info, err := h.postService.GetBySlug(c.Request.Context(), c.Param("slug"), isEditor(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}

// Create adds a new draft post
func (h *PostHandler) Create(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	info, err := h.postService.Create(c.Request.Context(), blog.CreatePostInput{
		AuthorID: userID,
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		CoverURL: req.CoverURL,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, info)
}

// Update edits a post
func (h *PostHandler) Update(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid post id")
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.postService.Update(c.Request.Context(), blog.UpdatePostInput{
		PostID:   postID,
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		CoverURL: req.CoverURL,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}

// Publish makes a draft post publicly visible
func (h *PostHandler) Publish(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid post id")
		return
	}

	info, err := h.postService.Publish(c.Request.Context(), postID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}

// Archive retires a published post
func (h *PostHandler) Archive(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid post id")
		return
	}

	info, err := h.postService.Archive(c.Request.Context(), postID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}

// Delete removes a post and its comments
func (h *PostHandler) Delete(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid post id")
		return
	}

	if err := h.postService.Delete(c.Request.Context(), postID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
