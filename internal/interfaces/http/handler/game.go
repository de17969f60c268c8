package handler

import (
	"github.com/kenhgt247/me-be-sub001/internal/application/game"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GameHandler handles quiz game HTTP requests
type GameHandler struct {
	BaseHandler
	gameService *game.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameService *game.Service) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// GameRequest represents the request body for creating or updating a quiz
type GameRequest struct {
	Title       string `json:"title" binding:"required,min=5,max=200"`
	Description string `json:"description" binding:"max=2000"`
}

// GameQuestionRequest represents the request body for a quiz question
type GameQuestionRequest struct {
	Prompt       string    `json:"prompt" binding:"required,min=5"`
	Options      [4]string `json:"options" binding:"required"`
	CorrectIndex int       `json:"correct_index" binding:"min=0,max=3"`
	Explanation  string    `json:"explanation" binding:"max=2000"`
}

// AnswerQuestionRequest represents the request body for answering a question
type AnswerQuestionRequest struct {
	QuestionID string `json:"question_id" binding:"required,uuid"`
	Choice     *int   `json:"choice" binding:"required"`
}

// List returns a page of published quizzes
func (h *GameHandler) List(c *gin.Context) {
	req, ok := h.bindPageRequest(c)
	if !ok {
		return
	}

	req = req.Normalize()
	page, err := h.gameService.List(c.Request.Context(), req)
	PageOrEmpty(&h.BaseHandler, c, page, req.PageSize, err)
}

// ListForEditors returns a page of quizzes in any status
func (h *GameHandler) ListForEditors(c *gin.Context) {
	req, ok := h.bindPageRequest(c)
	if !ok {
		return
	}

	req = req.Normalize()
	page, err := h.gameService.ListForEditors(c.Request.Context(), req)
	PageOrEmpty(&h.BaseHandler, c, page, req.PageSize, err)
}

// Play returns a playable quiz with answers withheld
func (h *GameHandler) Play(c *gin.Context) {
	view, err := h.gameService.Play(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, view)
}

// Answer grades one choice and reveals the explanation
func (h *GameHandler) Answer(c *gin.Context) {
	var req AnswerQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	questionID, err := uuid.Parse(req.QuestionID)
	if err != nil {
		h.BadRequest(c, "Invalid question id")
		return
	}

	result, err := h.gameService.Answer(c.Request.Context(), game.AnswerInput{
		QuestionID: questionID,
		Choice:     *req.Choice,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Create adds a new draft quiz
func (h *GameHandler) Create(c *gin.Context) {
	var req GameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.gameService.Create(c.Request.Context(), game.GameInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, info)
}

// Update edits a quiz
func (h *GameHandler) Update(c *gin.Context) {
	gameID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid game id")
		return
	}

	var req GameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.gameService.Update(c.Request.Context(), gameID, game.GameInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}

// Publish makes a quiz playable
func (h *GameHandler) Publish(c *gin.Context) {
	gameID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid game id")
		return
	}

	info, err := h.gameService.Publish(c.Request.Context(), gameID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}

// Unpublish takes a quiz back to draft
func (h *GameHandler) Unpublish(c *gin.Context) {
	gameID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid game id")
		return
	}

	info, err := h.gameService.Unpublish(c.Request.Context(), gameID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}

// ListQuestions returns a quiz's questions with answers, for the editor
func (h *GameHandler) ListQuestions(c *gin.Context) {
	gameID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid game id")
		return
	}

	infos, err := h.gameService.ListQuestions(c.Request.Context(), gameID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, infos)
}

// AddQuestion appends a question to a quiz
func (h *GameHandler) AddQuestion(c *gin.Context) {
	gameID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid game id")
		return
	}

	var req GameQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.gameService.AddQuestion(c.Request.Context(), gameID, game.QuestionInput{
		Prompt:       req.Prompt,
		Options:      req.Options,
		CorrectIndex: req.CorrectIndex,
		Explanation:  req.Explanation,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, info)
}

// UpdateQuestion edits a quiz question
func (h *GameHandler) UpdateQuestion(c *gin.Context) {
	questionID, err := uuid.Parse(c.Param("questionId"))
	if err != nil {
		h.BadRequest(c, "Invalid question id")
		return
	}

	var req GameQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.gameService.UpdateQuestion(c.Request.Context(), questionID, game.QuestionInput{
		Prompt:       req.Prompt,
		Options:      req.Options,
		CorrectIndex: req.CorrectIndex,
		Explanation:  req.Explanation,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}

// RemoveQuestion deletes a quiz question
func (h *GameHandler) RemoveQuestion(c *gin.Context) {
	questionID, err := uuid.Parse(c.Param("questionId"))
	if err != nil {
		h.BadRequest(c, "Invalid question id")
		return
	}

	if err := h.gameService.RemoveQuestion(c.Request.Context(), questionID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
