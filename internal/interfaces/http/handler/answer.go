package handler

import (
	"github.com/kenhgt247/me-be-sub001/internal/application/forum"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AnswerHandler handles forum answer HTTP requests
type AnswerHandler struct {
	BaseHandler
	answerService *forum.AnswerService
}

// NewAnswerHandler creates a new answer handler
func NewAnswerHandler(answerService *forum.AnswerService) *AnswerHandler {
	return &AnswerHandler{answerService: answerService}
}

// PostAnswerRequest represents the request body for posting an answer
type PostAnswerRequest struct {
	Content string `json:"content" binding:"required,min=10"`
}

// UpdateAnswerRequest represents the request body for editing an answer
type UpdateAnswerRequest struct {
	Content string `json:"content" binding:"required,min=10"`
}

// Post adds an answer to a question
func (h *AnswerHandler) Post(c *gin.Context) {
	questionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid question id")
		return
	}

	var req PostAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	info, err := h.answerService.Post(c.Request.Context(), forum.PostAnswerInput{
		QuestionID: questionID,
		AuthorID:   userID,
		Content:    req.Content,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, info)
}

// Update edits an answer's content
func (h *AnswerHandler) Update(c *gin.Context) {
	answerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid answer id")
		return
	}

	var req UpdateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	info, err := h.answerService.Update(c.Request.Context(), forum.UpdateAnswerInput{
		AnswerID: answerID,
		EditorID: userID,
		Content:  req.Content,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}

// Verify marks an answer as verified by an expert
func (h *AnswerHandler) Verify(c *gin.Context) {
	answerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid answer id")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	info, err := h.answerService.Verify(c.Request.Context(), forum.VerifyAnswerInput{
		AnswerID:   answerID,
		VerifierID: userID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}
