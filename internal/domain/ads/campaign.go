package ads

import (
	"net/url"
	"strings"
	"time"

	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
)

// PlacementTag identifies where on the site a campaign may appear
type PlacementTag string

const (
	PlacementHome     PlacementTag = "home"
	PlacementBlog     PlacementTag = "blog"
	PlacementDocument PlacementTag = "document"
	PlacementSidebar  PlacementTag = "sidebar"
)

// ValidPlacement reports whether the tag names a known placement
func ValidPlacement(tag PlacementTag) bool {
	switch tag {
	case PlacementHome, PlacementBlog, PlacementDocument, PlacementSidebar:
		return true
	}
	return false
}

// Campaign is a sponsor banner eligible for rotation at one placement
type Campaign struct {
	shared.BaseAggregateRoot
	Title     string       `gorm:"type:varchar(200);not null"`
	ImageURL  string       `gorm:"type:varchar(500);not null"`
	LinkURL   string       `gorm:"type:varchar(500);not null"`
	CTAText   string       `gorm:"type:varchar(100)"`
	Placement PlacementTag `gorm:"type:varchar(20);not null;index"`
	Active    bool         `gorm:"not null;default:true;index"`
	StartsAt  *time.Time
	EndsAt    *time.Time
}

// TableName returns the table name for GORM
func (Campaign) TableName() string {
	return "ad_campaigns"
}

// NewCampaign creates an active campaign
func NewCampaign(title, imageURL, linkURL, ctaText string, placement PlacementTag) (*Campaign, error) {
	if strings.TrimSpace(title) == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Campaign title cannot be empty")
	}
	if !ValidPlacement(placement) {
		return nil, shared.NewDomainError("INVALID_PLACEMENT", "Unknown placement tag")
	}
	if err := validateCampaignURL(imageURL); err != nil {
		return nil, err
	}
	if err := validateCampaignURL(linkURL); err != nil {
		return nil, err
	}

	return &Campaign{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             strings.TrimSpace(title),
		ImageURL:          imageURL,
		LinkURL:           linkURL,
		CTAText:           strings.TrimSpace(ctaText),
		Placement:         placement,
		Active:            true,
	}, nil
}

// Update edits the campaign creative
func (c *Campaign) Update(title, imageURL, linkURL, ctaText string) error {
	if strings.TrimSpace(title) == "" {
		return shared.NewDomainError("INVALID_TITLE", "Campaign title cannot be empty")
	}
	if err := validateCampaignURL(imageURL); err != nil {
		return err
	}
	if err := validateCampaignURL(linkURL); err != nil {
		return err
	}

	c.Title = strings.TrimSpace(title)
	c.ImageURL = imageURL
	c.LinkURL = linkURL
	c.CTAText = strings.TrimSpace(ctaText)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// Schedule bounds the campaign to a display window. Either end may be nil.
func (c *Campaign) Schedule(startsAt, endsAt *time.Time) error {
	if startsAt != nil && endsAt != nil && !endsAt.After(*startsAt) {
		return shared.NewDomainError("INVALID_WINDOW", "Campaign end must be after start")
	}
	c.StartsAt = startsAt
	c.EndsAt = endsAt
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// Activate turns the campaign back on
func (c *Campaign) Activate() {
	c.Active = true
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// Deactivate pulls the campaign from rotation
func (c *Campaign) Deactivate() {
	c.Active = false
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// EligibleAt reports whether the campaign may be shown at the given time
func (c *Campaign) EligibleAt(now time.Time) bool {
	if !c.Active {
		return false
	}
	if c.StartsAt != nil && now.Before(*c.StartsAt) {
		return false
	}
	if c.EndsAt != nil && now.After(*c.EndsAt) {
		return false
	}
	return true
}

func validateCampaignURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return shared.NewDomainError("INVALID_URL", "Campaign URL must be absolute http(s)")
	}
	return nil
}
