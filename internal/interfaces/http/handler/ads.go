package handler

import (
	"time"

	"github.com/kenhgt247/me-be-sub001/internal/application/ads"
	domainads "github.com/kenhgt247/me-be-sub001/internal/domain/ads"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdsHandler handles ad serving and campaign management HTTP requests
type AdsHandler struct {
	BaseHandler
	adsService *ads.Service
}

// NewAdsHandler creates a new ads handler
func NewAdsHandler(adsService *ads.Service) *AdsHandler {
	return &AdsHandler{adsService: adsService}
}

// CampaignRequest represents the request body for creating or updating a campaign
type CampaignRequest struct {
	Title     string     `json:"title" binding:"required,min=2,max=200"`
	ImageURL  string     `json:"image_url" binding:"required,url,max=500"`
	LinkURL   string     `json:"link_url" binding:"required,url,max=500"`
	CTAText   string     `json:"cta_text" binding:"max=100"`
	Placement string     `json:"placement" binding:"required"`
	StartsAt  *time.Time `json:"starts_at"`
	EndsAt    *time.Time `json:"ends_at"`
}

// RotationRequest represents the request body for configuring rotation
type RotationRequest struct {
	Placement string `json:"placement" binding:"required"`
	Interval  int    `json:"interval" binding:"required"`
	Enabled   *bool  `json:"enabled" binding:"required"`
}

// SetCampaignActiveRequest represents the request body for toggling a campaign
type SetCampaignActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// Serve picks one banner for a placement slot
func (h *AdsHandler) Serve(c *gin.Context) {
	placement := domainads.PlacementTag(c.Param("placement"))

	result, err := h.adsService.Serve(c.Request.Context(), placement)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// ListCampaigns returns all campaigns
func (h *AdsHandler) ListCampaigns(c *gin.Context) {
	infos, err := h.adsService.ListCampaigns(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, infos)
}

// CreateCampaign adds a new campaign
func (h *AdsHandler) CreateCampaign(c *gin.Context) {
	var req CampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.adsService.CreateCampaign(c.Request.Context(), ads.CampaignInput{
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		LinkURL:   req.LinkURL,
		CTAText:   req.CTAText,
		Placement: domainads.PlacementTag(req.Placement),
		StartsAt:  req.StartsAt,
		EndsAt:    req.EndsAt,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, info)
}

// UpdateCampaign edits a campaign
func (h *AdsHandler) UpdateCampaign(c *gin.Context) {
	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid campaign id")
		return
	}

	var req CampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.adsService.UpdateCampaign(c.Request.Context(), campaignID, ads.CampaignInput{
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		LinkURL:   req.LinkURL,
		CTAText:   req.CTAText,
		Placement: domainads.PlacementTag(req.Placement),
		StartsAt:  req.StartsAt,
		EndsAt:    req.EndsAt,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}

// SetCampaignActive toggles a campaign in or out of rotation
func (h *AdsHandler) SetCampaignActive(c *gin.Context) {
	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid campaign id")
		return
	}

	var req SetCampaignActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.adsService.SetCampaignActive(c.Request.Context(), campaignID, *req.Active)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}

// DeleteCampaign removes a campaign
func (h *AdsHandler) DeleteCampaign(c *gin.Context) {
	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid campaign id")
		return
	}

	if err := h.adsService.DeleteCampaign(c.Request.Context(), campaignID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListRotations returns the rotation settings of every placement
func (h *AdsHandler) ListRotations(c *gin.Context) {
	infos, err := h.adsService.ListRotations(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, infos)
}

// ConfigureRotation creates or updates rotation settings for a placement
func (h *AdsHandler) ConfigureRotation(c *gin.Context) {
	var req RotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.adsService.ConfigureRotation(c.Request.Context(), ads.RotationInput{
		Placement: domainads.PlacementTag(req.Placement),
		Interval:  req.Interval,
		Enabled:   *req.Enabled,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}
