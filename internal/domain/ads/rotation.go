package ads

import (
	"time"

	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
)

// RotationConfig controls ad density at one placement: one banner is
// interleaved after every Interval content items. A single row exists per
// placement.
type RotationConfig struct {
	shared.BaseAggregateRoot
	Placement PlacementTag `gorm:"type:varchar(20);uniqueIndex;not null"`
	Interval  int          `gorm:"not null;default:5"`
	Enabled   bool         `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (RotationConfig) TableName() string {
	return "ad_rotation_configs"
}

// NewRotationConfig creates the rotation settings for a placement
func NewRotationConfig(placement PlacementTag, interval int) (*RotationConfig, error) {
	if !ValidPlacement(placement) {
		return nil, shared.NewDomainError("INVALID_PLACEMENT", "Unknown placement tag")
	}
	if err := validateInterval(interval); err != nil {
		return nil, err
	}

	return &RotationConfig{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Placement:         placement,
		Interval:          interval,
		Enabled:           true,
	}, nil
}

// SetInterval changes how many content items separate consecutive banners
func (r *RotationConfig) SetInterval(interval int) error {
	if err := validateInterval(interval); err != nil {
		return err
	}
	r.Interval = interval
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

// Enable turns rotation on for the placement
func (r *RotationConfig) Enable() {
	r.Enabled = true
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
}

// Disable turns rotation off for the placement
func (r *RotationConfig) Disable() {
	r.Enabled = false
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
}

// ShouldShowAt reports whether a banner slot follows the item at the given
// zero-based position in a content list
func (r *RotationConfig) ShouldShowAt(position int) bool {
	if !r.Enabled || r.Interval <= 0 {
		return false
	}
	return (position+1)%r.Interval == 0
}

func validateInterval(interval int) error {
	if interval < 1 || interval > 100 {
		return shared.NewDomainError("INVALID_INTERVAL", "Rotation interval must be between 1 and 100")
	}
	return nil
}
