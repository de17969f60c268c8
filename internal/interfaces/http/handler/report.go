package handler

import (
	"github.com/kenhgt247/me-be-sub001/internal/application/forum"
	domainforum "github.com/kenhgt247/me-be-sub001/internal/domain/forum"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReportHandler handles content report HTTP requests
type ReportHandler struct {
	BaseHandler
	reportService *forum.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *forum.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// CreateReportRequest represents the request body for flagging content
type CreateReportRequest struct {
	TargetKind string `json:"target_kind" binding:"required,oneof=question answer comment"`
	TargetID   string `json:"target_id" binding:"required,uuid"`
	Reason     string `json:"reason" binding:"required,min=10,max=2000"`
}

// ResolveReportRequest represents the request body for closing a report
type ResolveReportRequest struct {
	// Action hides the reported content before closing the report
	Action *bool `json:"action" binding:"required"`
}

// Create flags a piece of content for moderation
func (h *ReportHandler) Create(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	targetID, err := uuid.Parse(req.TargetID)
	if err != nil {
		h.BadRequest(c, "Invalid target id")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	info, err := h.reportService.Create(c.Request.Context(), forum.CreateReportInput{
		TargetKind: domainforum.ReportTarget(req.TargetKind),
		TargetID:   targetID,
		ReporterID: userID,
		Reason:     req.Reason,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, info)
}

// List returns a page of reports in the given moderation state
func (h *ReportHandler) List(c *gin.Context) {
	req, ok := h.bindPageRequest(c)
	if !ok {
		return
	}

	status := domainforum.ReportStatus(c.DefaultQuery("status", string(domainforum.ReportStatusOpen)))
	switch status {
	case domainforum.ReportStatusOpen, domainforum.ReportStatusDismissed, domainforum.ReportStatusActioned:
	default:
		h.BadRequest(c, "Invalid report status")
		return
	}

	req = req.Normalize()
	page, err := h.reportService.List(c.Request.Context(), req, status)
	PageOrEmpty(&h.BaseHandler, c, page, req.PageSize, err)
}

// Resolve closes a report, optionally hiding the reported content
func (h *ReportHandler) Resolve(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid report id")
		return
	}

	var req ResolveReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	resolverID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	info, err := h.reportService.Resolve(c.Request.Context(), forum.ResolveReportInput{
		ReportID:   reportID,
		ResolverID: resolverID,
		Action:     *req.Action,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}
