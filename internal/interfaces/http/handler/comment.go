package handler

import (
	"github.com/kenhgt247/me-be-sub001/internal/application/blog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CommentHandler handles blog comment HTTP requests
type CommentHandler struct {
	BaseHandler
	commentService *blog.CommentService
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(commentService *blog.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CommentRequest represents the request body for adding or editing a comment
type CommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

// ListByPost returns the visible comments of a post
func (h *CommentHandler) ListByPost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid post id")
		return
	}

	infos, err := h.commentService.ListByPost(c.Request.Context(), postID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, infos)
}

// Add comments on a published post
func (h *CommentHandler) Add(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid post id")
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	info, err := h.commentService.Add(c.Request.Context(), blog.AddCommentInput{
		PostID:   postID,
		AuthorID: userID,
		Content:  req.Content,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, info)
}

// Update edits a comment's content
func (h *CommentHandler) Update(c *gin.Context) {
	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid comment id")
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	info, err := h.commentService.Update(c.Request.Context(), blog.UpdateCommentInput{
		CommentID: commentID,
		EditorID:  userID,
		Content:   req.Content,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}
