package ads

import (
	"context"

	"github.com/google/uuid"
)

// CampaignRepository defines the interface for campaign persistence
type CampaignRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Campaign, error)

	// FindActiveByPlacement returns active campaigns for one placement;
	// schedule eligibility is the caller's concern
	FindActiveByPlacement(ctx context.Context, placement PlacementTag) ([]Campaign, error)

	// FindAll returns every campaign, newest first, for the admin console
	FindAll(ctx context.Context) ([]Campaign, error)

	Save(ctx context.Context, campaign *Campaign) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RotationConfigRepository defines the interface for rotation settings
type RotationConfigRepository interface {
	FindByPlacement(ctx context.Context, placement PlacementTag) (*RotationConfig, error)
	FindAll(ctx context.Context) ([]RotationConfig, error)
	Save(ctx context.Context, config *RotationConfig) error
}
