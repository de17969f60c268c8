package handler

import (
	"github.com/kenhgt247/me-be-sub001/internal/application/forum"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CategoryHandler handles forum category HTTP requests
type CategoryHandler struct {
	BaseHandler
	categoryService *forum.CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService *forum.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRequest represents the request body for creating or updating a category
type CategoryRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"max=500"`
	SortOrder   int    `json:"sort_order" binding:"min=0"`
}

// SetCategoryActiveRequest represents the request body for toggling a category
type SetCategoryActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// List returns active categories; admins may request inactive ones too
func (h *CategoryHandler) List(c *gin.Context) {
	activeOnly := c.Query("include_inactive") != "true"

	infos, err := h.categoryService.List(c.Request.Context(), activeOnly)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, infos)
}

// GetBySlug returns a single category
func (h *CategoryHandler) GetBySlug(c *gin.Context) {
	info, err := h.categoryService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}

// Create adds a new category
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.categoryService.Create(c.Request.Context(), forum.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, info)
}

// Update edits a category
func (h *CategoryHandler) Update(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid category id")
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.categoryService.Update(c.Request.Context(), categoryID, forum.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}

// SetActive toggles whether a category accepts new questions
func (h *CategoryHandler) SetActive(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid category id")
		return
	}

	var req SetCategoryActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.categoryService.SetActive(c.Request.Context(), categoryID, *req.Active)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}
