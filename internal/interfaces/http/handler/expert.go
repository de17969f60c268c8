package handler

import (
	"github.com/kenhgt247/me-be-sub001/internal/application/identity"
	domainidentity "github.com/kenhgt247/me-be-sub001/internal/domain/identity"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ExpertHandler handles expert application HTTP requests
type ExpertHandler struct {
	BaseHandler
	expertService *identity.ExpertService
}

// NewExpertHandler creates a new expert handler
func NewExpertHandler(expertService *identity.ExpertService) *ExpertHandler {
	return &ExpertHandler{expertService: expertService}
}

// ApplyExpertRequest represents the request body for an expert application
type ApplyExpertRequest struct {
	Credentials string `json:"credentials" binding:"required,min=20,max=5000"`
	Specialty   string `json:"specialty" binding:"max=200"`
}

// ReviewApplicationRequest represents the request body for reviewing an application
type ReviewApplicationRequest struct {
	Approve *bool  `json:"approve" binding:"required"`
	Note    string `json:"note" binding:"max=2000"`
}

// Apply submits an expert application for the authenticated user
func (h *ExpertHandler) Apply(c *gin.Context) {
	var req ApplyExpertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	info, err := h.expertService.Apply(c.Request.Context(), identity.ApplyExpertInput{
		UserID:      userID,
		Credentials: req.Credentials,
		Specialty:   req.Specialty,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, info)
}

// GetOwn returns the authenticated user's latest application
func (h *ExpertHandler) GetOwn(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	info, err := h.expertService.GetOwn(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}

// List returns a page of applications in the given review state
func (h *ExpertHandler) List(c *gin.Context) {
	req, ok := h.bindPageRequest(c)
	if !ok {
		return
	}

	status := domainidentity.ApplicationStatus(c.DefaultQuery("status", string(domainidentity.ApplicationStatusPending)))
	switch status {
	case domainidentity.ApplicationStatusPending, domainidentity.ApplicationStatusApproved, domainidentity.ApplicationStatusRejected:
	default:
		h.BadRequest(c, "Invalid application status")
		return
	}

	req = req.Normalize()
	page, err := h.expertService.List(c.Request.Context(), req, status)
	PageOrEmpty(&h.BaseHandler, c, page, req.PageSize, err)
}

// Review approves or rejects a pending application
func (h *ExpertHandler) Review(c *gin.Context) {
	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid application id")
		return
	}

	var req ReviewApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	reviewerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	info, err := h.expertService.Review(c.Request.Context(), identity.ReviewApplicationInput{
		ApplicationID: applicationID,
		ReviewerID:    reviewerID,
		Approve:       *req.Approve,
		Note:          req.Note,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}
