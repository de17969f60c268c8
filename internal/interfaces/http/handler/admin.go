package handler

import (
	"github.com/kenhgt247/me-be-sub001/internal/application/blog"
	"github.com/kenhgt247/me-be-sub001/internal/application/forum"
	"github.com/kenhgt247/me-be-sub001/internal/application/identity"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler handles member management and content moderation requests
type AdminHandler struct {
	BaseHandler
	userService     *identity.UserService
	questionService *forum.QuestionService
	answerService   *forum.AnswerService
	commentService  *blog.CommentService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	userService *identity.UserService,
	questionService *forum.QuestionService,
	answerService *forum.AnswerService,
	commentService *blog.CommentService,
) *AdminHandler {
	return &AdminHandler{
		userService:     userService,
		questionService: questionService,
		answerService:   answerService,
		commentService:  commentService,
	}
}

// ListUsers returns a page of member accounts
func (h *AdminHandler) ListUsers(c *gin.Context) {
	req, ok := h.bindPageRequest(c)
	if !ok {
		return
	}

	req = req.Normalize()
	page, err := h.userService.List(c.Request.Context(), req)
	PageOrEmpty(&h.BaseHandler, c, page, req.PageSize, err)
}

// UnlockUser clears a lockout and resets the failed-attempt counter
func (h *AdminHandler) UnlockUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid user id")
		return
	}

	if err := h.userService.Unlock(c.Request.Context(), userID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Account unlocked"})
}

// DeactivateUser retires a member account
func (h *AdminHandler) DeactivateUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid user id")
		return
	}

	if err := h.userService.Deactivate(c.Request.Context(), userID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Account deactivated"})
}

// ListQuestionsForModeration returns a page of questions in any status
func (h *AdminHandler) ListQuestionsForModeration(c *gin.Context) {
	req, ok := h.bindPageRequest(c)
	if !ok {
		return
	}

	req = req.Normalize()
	page, err := h.questionService.ListForModeration(c.Request.Context(), req)
	PageOrEmpty(&h.BaseHandler, c, page, req.PageSize, err)
}

// HideQuestion removes a question from public view
func (h *AdminHandler) HideQuestion(c *gin.Context) {
	questionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid question id")
		return
	}

	if err := h.questionService.Hide(c.Request.Context(), questionID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Question hidden"})
}

// RestoreQuestion returns a hidden question to public view
func (h *AdminHandler) RestoreQuestion(c *gin.Context) {
	questionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid question id")
		return
	}

	if err := h.questionService.Restore(c.Request.Context(), questionID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Question restored"})
}

// HideAnswer removes an answer from public view
func (h *AdminHandler) HideAnswer(c *gin.Context) {
	answerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid answer id")
		return
	}

	if err := h.answerService.Hide(c.Request.Context(), answerID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Answer hidden"})
}

// HideComment removes a blog comment from public view
func (h *AdminHandler) HideComment(c *gin.Context) {
	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid comment id")
		return
	}

	if err := h.commentService.Hide(c.Request.Context(), commentID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Comment hidden"})
}
