package persistence

import (
	"context"
	"errors"

	"github.com/kenhgt247/me-be-sub001/internal/domain/ads"
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCampaignRepository implements CampaignRepository using GORM
type GormCampaignRepository struct {
	db *gorm.DB
}

// NewGormCampaignRepository creates a new GormCampaignRepository
func NewGormCampaignRepository(db *gorm.DB) *GormCampaignRepository {
	return &GormCampaignRepository{db: db}
}

// FindByID finds a campaign by its ID
func (r *GormCampaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*ads.Campaign, error) {
	var campaign ads.Campaign
	if err := r.db.WithContext(ctx).First(&campaign, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &campaign, nil
}

// FindActiveByPlacement returns active campaigns for one placement
func (r *GormCampaignRepository) FindActiveByPlacement(ctx context.Context, placement ads.PlacementTag) ([]ads.Campaign, error) {
	var campaigns []ads.Campaign
	if err := r.db.WithContext(ctx).
		Where("placement = ? AND active = ?", placement, true).
		Find(&campaigns).Error; err != nil {
		return nil, err
	}
	return campaigns, nil
}

// FindAll returns every campaign, newest first
func (r *GormCampaignRepository) FindAll(ctx context.Context) ([]ads.Campaign, error) {
	var campaigns []ads.Campaign
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&campaigns).Error; err != nil {
		return nil, err
	}
	return campaigns, nil
}

// Save creates or updates a campaign
func (r *GormCampaignRepository) Save(ctx context.Context, campaign *ads.Campaign) error {
	return r.db.WithContext(ctx).Save(campaign).Error
}

// Delete removes a campaign
func (r *GormCampaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&ads.Campaign{}, "id = ?", id).Error
}

// GormRotationConfigRepository implements RotationConfigRepository using GORM
type GormRotationConfigRepository struct {
	db *gorm.DB
}

// NewGormRotationConfigRepository creates a new GormRotationConfigRepository
func NewGormRotationConfigRepository(db *gorm.DB) *GormRotationConfigRepository {
	return &GormRotationConfigRepository{db: db}
}

// FindByPlacement finds the rotation settings for one placement
func (r *GormRotationConfigRepository) FindByPlacement(ctx context.Context, placement ads.PlacementTag) (*ads.RotationConfig, error) {
	var cfg ads.RotationConfig
	if err := r.db.WithContext(ctx).First(&cfg, "placement = ?", placement).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &cfg, nil
}

// FindAll returns the rotation settings for every placement
func (r *GormRotationConfigRepository) FindAll(ctx context.Context) ([]ads.RotationConfig, error) {
	var configs []ads.RotationConfig
	if err := r.db.WithContext(ctx).Order("placement ASC").Find(&configs).Error; err != nil {
		return nil, err
	}
	return configs, nil
}

// Save creates or updates rotation settings
func (r *GormRotationConfigRepository) Save(ctx context.Context, config *ads.RotationConfig) error {
	return r.db.WithContext(ctx).Save(config).Error
}
