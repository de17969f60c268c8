package forum

import (
	"strings"
	"time"

	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
)

// Category groups questions by topic (sleep, nutrition, health, ...)
type Category struct {
	shared.BaseAggregateRoot
	Name        string `gorm:"type:varchar(100);not null"`
	Slug        string `gorm:"type:varchar(120);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
	SortOrder   int    `gorm:"not null;default:0"`
	Active      bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new active category; the slug is derived from the name
func NewCategory(name, description string) (*Category, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}

	slug := shared.Slugify(name)
	if slug == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name yields an empty slug")
	}

	return &Category{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Slug:              slug,
		Description:       description,
		Active:            true,
	}, nil
}

// Update changes name and description; the slug follows the name
func (c *Category) Update(name, description string) error {
	if err := validateCategoryName(name); err != nil {
		return err
	}

	slug := shared.Slugify(name)
	if slug == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name yields an empty slug")
	}

	c.Name = strings.TrimSpace(name)
	c.Slug = slug
	c.Description = description
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// SetSortOrder sets the display order
func (c *Category) SetSortOrder(order int) {
	c.SortOrder = order
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// Deactivate hides the category from pickers; existing questions keep it
func (c *Category) Deactivate() error {
	if !c.Active {
		return shared.NewDomainError("ALREADY_INACTIVE", "Category is already inactive")
	}
	c.Active = false
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// Activate re-enables the category
func (c *Category) Activate() error {
	if c.Active {
		return shared.NewDomainError("ALREADY_ACTIVE", "Category is already active")
	}
	c.Active = true
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

func validateCategoryName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 100 characters")
	}
	return nil
}
