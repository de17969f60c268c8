package ads

import (
	"time"

	"github.com/kenhgt247/me-be-sub001/internal/domain/ads"
	"github.com/google/uuid"
)

// CampaignInput contains input for creating or updating a campaign
type CampaignInput struct {
	Title     string
	ImageURL  string
	LinkURL   string
	CTAText   string
	Placement ads.PlacementTag
	StartsAt  *time.Time
	EndsAt    *time.Time
}

// RotationInput contains input for configuring rotation at a placement
type RotationInput struct {
	Placement ads.PlacementTag
	Interval  int
	Enabled   bool
}

// CampaignInfo is the projection of an ad campaign
type CampaignInfo struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	ImageURL  string     `json:"image_url"`
	LinkURL   string     `json:"link_url"`
	CTAText   string     `json:"cta_text,omitempty"`
	Placement string     `json:"placement"`
	Active    bool       `json:"active"`
	StartsAt  *time.Time `json:"starts_at,omitempty"`
	EndsAt    *time.Time `json:"ends_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// ToCampaignInfo maps a campaign to its projection
func ToCampaignInfo(c *ads.Campaign) CampaignInfo {
	return CampaignInfo{
		ID:        c.ID,
		Title:     c.Title,
		ImageURL:  c.ImageURL,
		LinkURL:   c.LinkURL,
		CTAText:   c.CTAText,
		Placement: string(c.Placement),
		Active:    c.Active,
		StartsAt:  c.StartsAt,
		EndsAt:    c.EndsAt,
		CreatedAt: c.CreatedAt,
	}
}

// RotationInfo is the projection of a placement's rotation settings
type RotationInfo struct {
	Placement string `json:"placement"`
	Interval  int    `json:"interval"`
	Enabled   bool   `json:"enabled"`
}

// ToRotationInfo maps rotation settings to their projection
func ToRotationInfo(r *ads.RotationConfig) RotationInfo {
	return RotationInfo{
		Placement: string(r.Placement),
		Interval:  r.Interval,
		Enabled:   r.Enabled,
	}
}

// ServeResult is the banner handed to the client for one slot, together
// with the placement's interleaving interval
type ServeResult struct {
	Campaign *CampaignInfo `json:"campaign"`
	Interval int           `json:"interval"`
}
