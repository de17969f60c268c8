package handler

import (
	"strconv"

	"github.com/kenhgt247/me-be-sub001/internal/application/forum"
	"github.com/kenhgt247/me-be-sub001/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// QuestionHandler handles forum question HTTP requests
type QuestionHandler struct {
	BaseHandler
	questionService *forum.QuestionService
	liveSearch      *forum.LiveSearchService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionService *forum.QuestionService, liveSearch *forum.LiveSearchService) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		liveSearch:      liveSearch,
	}
}

// AskQuestionRequest represents the request body for posting a question
type AskQuestionRequest struct {
	Title      string `json:"title" binding:"required,min=10,max=200"`
	Content    string `json:"content" binding:"required,min=10"`
	CategoryID string `json:"category_id" binding:"omitempty,uuid"`
}

// UpdateQuestionRequest represents the request body for editing a question
type UpdateQuestionRequest struct {
	Title   string `json:"title" binding:"required,min=10,max=200"`
	Content string `json:"content" binding:"required,min=10"`
}

// Ask posts a new question
func (h *QuestionHandler) Ask(c *gin.Context) {
	var req AskQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	input := forum.AskQuestionInput{
		AuthorID: userID,
		Title:    req.Title,
		Content:  req.Content,
	}
	if req.CategoryID != "" {
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			h.BadRequest(c, "Invalid category id")
			return
		}
		input.CategoryID = &categoryID
	}

	info, err := h.questionService.Ask(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, info)
}

// GetBySlug returns a question with its visible answers
func (h *QuestionHandler) GetBySlug(c *gin.Context) {
	viewerID := uuid.Nil
	if id := getOptionalUserID(c); id != nil {
		viewerID = *id
	}

	detail, err := h.questionService.GetBySlug(c.Request.Context(), c.Param("slug"), viewerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, detail)
}

// Update edits a question's title and content
func (h *QuestionHandler) Update(c *gin.Context) {
	questionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid question id")
		return
	}

	var req UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	info, err := h.questionService.Update(c.Request.Context(), forum.UpdateQuestionInput{
		QuestionID: questionID,
		EditorID:   userID,
		Title:      req.Title,
		Content:    req.Content,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}

// Resolve marks a question as resolved by its author
func (h *QuestionHandler) Resolve(c *gin.Context) {
	questionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid question id")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	info, err := h.questionService.Resolve(c.Request.Context(), questionID, userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}

// LiveSearch answers search-as-you-type over visible questions. A response
// that lost the race against a newer query from the same client comes back
// as 204 so the client never paints stale results.
func (h *QuestionHandler) LiveSearch(c *gin.Context) {
	query := c.Query("q")
	pageSize := 10
	if raw := c.Query("page_size"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			pageSize = n
		}
	}

	// Staleness is judged per client: signed-in users by identity,
	// anonymous visitors by remote address
	clientKey := middleware.GetJWTUserID(c)
	if clientKey == "" {
		clientKey = c.ClientIP()
	}

	result := h.liveSearch.Search(c.Request.Context(), clientKey, query, pageSize)
	if result.Stale {
		h.NoContent(c)
		return
	}

	h.Success(c, result)
}

// List returns a page of visible questions, optionally filtered by category
func (h *QuestionHandler) List(c *gin.Context) {
	req, ok := h.bindPageRequest(c)
	if !ok {
		return
	}

	var categoryID *uuid.UUID
	if raw := c.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid category id")
			return
		}
		categoryID = &id
	}

	req = req.Normalize()
	page, err := h.questionService.List(c.Request.Context(), req, categoryID)
	PageOrEmpty(&h.BaseHandler, c, page, req.PageSize, err)
}
