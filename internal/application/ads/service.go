package ads

import (
	"context"
	"errors"
	"time"

	"github.com/kenhgt247/me-be-sub001/internal/domain/ads"
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service handles campaign management and banner serving
type Service struct {
	campaignRepo    ads.CampaignRepository
	rotationRepo    ads.RotationConfigRepository
	selector        *ads.Selector
	defaultInterval int
	logger          *zap.Logger
}

// NewService creates a new ads Service. defaultInterval applies to
// placements with no stored rotation settings.
func NewService(
	campaignRepo ads.CampaignRepository,
	rotationRepo ads.RotationConfigRepository,
	selector *ads.Selector,
	defaultInterval int,
	logger *zap.Logger,
) *Service {
	if defaultInterval < 1 {
		defaultInterval = 5
	}
	return &Service{
		campaignRepo:    campaignRepo,
		rotationRepo:    rotationRepo,
		selector:        selector,
		defaultInterval: defaultInterval,
		logger:          logger,
	}
}

// Serve picks one banner for the placement uniformly at random among the
// campaigns eligible right now. A placement with no eligible campaign
// serves an empty slot, not an error.
func (s *Service) Serve(ctx context.Context, placement ads.PlacementTag) (*ServeResult, error) {
	if !ads.ValidPlacement(placement) {
		return nil, shared.NewDomainError("INVALID_PLACEMENT", "Unknown placement tag")
	}

	interval := s.defaultInterval
	enabled := true
	if config, err := s.rotationRepo.FindByPlacement(ctx, placement); err == nil {
		interval = config.Interval
		enabled = config.Enabled
	} else if !errors.Is(err, shared.ErrNotFound) {
		s.logger.Warn("Failed to load rotation settings", zap.Error(err), zap.String("placement", string(placement)))
	}

	result := &ServeResult{Interval: interval}
	if !enabled {
		return result, nil
	}

	campaigns, err := s.campaignRepo.FindActiveByPlacement(ctx, placement)
	if err != nil {
		s.logger.Error("Failed to load campaigns", zap.Error(err), zap.String("placement", string(placement)))
		return result, nil
	}

	if picked := s.selector.PickEligible(campaigns, time.Now()); picked != nil {
		info := ToCampaignInfo(picked)
		result.Campaign = &info
	}
	return result, nil
}

// CreateCampaign adds a new campaign (admin)
func (s *Service) CreateCampaign(ctx context.Context, input CampaignInput) (*CampaignInfo, error) {
	campaign, err := ads.NewCampaign(input.Title, input.ImageURL, input.LinkURL, input.CTAText, input.Placement)
	if err != nil {
		return nil, err
	}
	if input.StartsAt != nil || input.EndsAt != nil {
		if err := campaign.Schedule(input.StartsAt, input.EndsAt); err != nil {
			return nil, err
		}
	}

	if err := s.campaignRepo.Save(ctx, campaign); err != nil {
		s.logger.Error("Failed to save campaign", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create campaign")
	}

	s.logger.Info("Campaign created",
		zap.String("campaign_id", campaign.ID.String()),
		zap.String("placement", string(input.Placement)))

	info := ToCampaignInfo(campaign)
	return &info, nil
}

// UpdateCampaign edits a campaign's creative and schedule (admin)
func (s *Service) UpdateCampaign(ctx context.Context, id uuid.UUID, input CampaignInput) (*CampaignInfo, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := campaign.Update(input.Title, input.ImageURL, input.LinkURL, input.CTAText); err != nil {
		return nil, err
	}
	if err := campaign.Schedule(input.StartsAt, input.EndsAt); err != nil {
		return nil, err
	}

	if err := s.campaignRepo.Save(ctx, campaign); err != nil {
		s.logger.Error("Failed to save campaign update", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update campaign")
	}

	info := ToCampaignInfo(campaign)
	return &info, nil
}

// SetCampaignActive toggles a campaign in and out of rotation (admin)
func (s *Service) SetCampaignActive(ctx context.Context, id uuid.UUID, active bool) (*CampaignInfo, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if active {
		campaign.Activate()
	} else {
		campaign.Deactivate()
	}

	if err := s.campaignRepo.Save(ctx, campaign); err != nil {
		s.logger.Error("Failed to save campaign state", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update campaign")
	}

	info := ToCampaignInfo(campaign)
	return &info, nil
}

// ListCampaigns returns every campaign, newest first (admin)
func (s *Service) ListCampaigns(ctx context.Context) ([]CampaignInfo, error) {
	campaigns, err := s.campaignRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]CampaignInfo, len(campaigns))
	for i := range campaigns {
		infos[i] = ToCampaignInfo(&campaigns[i])
	}
	return infos, nil
}

// DeleteCampaign removes a campaign (admin)
func (s *Service) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	if _, err := s.campaignRepo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.campaignRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete campaign", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete campaign")
	}

	s.logger.Info("Campaign deleted", zap.String("campaign_id", id.String()))
	return nil
}

// ConfigureRotation creates or updates rotation settings for a
// placement (admin)
func (s *Service) ConfigureRotation(ctx context.Context, input RotationInput) (*RotationInfo, error) {
	config, err := s.rotationRepo.FindByPlacement(ctx, input.Placement)
	if errors.Is(err, shared.ErrNotFound) {
		config, err = ads.NewRotationConfig(input.Placement, input.Interval)
		if err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	} else {
		if err := config.SetInterval(input.Interval); err != nil {
			return nil, err
		}
	}

	if input.Enabled {
		config.Enable()
	} else {
		config.Disable()
	}

	if err := s.rotationRepo.Save(ctx, config); err != nil {
		s.logger.Error("Failed to save rotation settings", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save rotation settings")
	}

	s.logger.Info("Rotation configured",
		zap.String("placement", string(input.Placement)),
		zap.Int("interval", config.Interval),
		zap.Bool("enabled", config.Enabled))

	info := ToRotationInfo(config)
	return &info, nil
}

// ListRotations returns the rotation settings for every configured
// placement (admin)
func (s *Service) ListRotations(ctx context.Context) ([]RotationInfo, error) {
	configs, err := s.rotationRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]RotationInfo, len(configs))
	for i := range configs {
		infos[i] = ToRotationInfo(&configs[i])
	}
	return infos, nil
}
