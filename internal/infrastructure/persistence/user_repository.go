package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/kenhgt247/me-be-sub001/internal/domain/identity"
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByID finds a user by its ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	var user identity.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByPublicID finds a user by its public id
func (r *GormUserRepository) FindByPublicID(ctx context.Context, publicID string) (*identity.User, error) {
	var user identity.User
	if err := r.db.WithContext(ctx).First(&user, "public_id = ?", publicID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email, case-insensitively
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	var user identity.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", strings.ToLower(email)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindPage returns one cursor page of users for the admin console
func (r *GormUserRepository) FindPage(ctx context.Context, req shared.PageRequest) ([]identity.User, error) {
	q := r.db.WithContext(ctx).Model(&identity.User{})

	if req.Search != "" {
		pattern := "%" + req.Search + "%"
		q = q.Where("email ILIKE ? OR display_name ILIKE ?", pattern, pattern)
	}

	q, err := pageScope(q, req)
	if err != nil {
		return nil, err
	}

	var users []identity.User
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ExistsByEmail checks whether any user has the given email
func (r *GormUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&identity.User{}).
		Where("email = ?", strings.ToLower(email)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a user
func (r *GormUserRepository) Save(ctx context.Context, user *identity.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// Delete removes a user
func (r *GormUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&identity.User{}, "id = ?", id).Error
}

// GormExpertApplicationRepository implements ExpertApplicationRepository
// using GORM
type GormExpertApplicationRepository struct {
	db *gorm.DB
}

// NewGormExpertApplicationRepository creates a new GormExpertApplicationRepository
func NewGormExpertApplicationRepository(db *gorm.DB) *GormExpertApplicationRepository {
	return &GormExpertApplicationRepository{db: db}
}

// FindByID finds an application by its ID
func (r *GormExpertApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.ExpertApplication, error) {
	var app identity.ExpertApplication
	if err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// FindPendingByUser returns the user's pending application, if any
func (r *GormExpertApplicationRepository) FindPendingByUser(ctx context.Context, userID uuid.UUID) (*identity.ExpertApplication, error) {
	var app identity.ExpertApplication
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, identity.ApplicationStatusPending).
		First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// FindPage returns one cursor page of applications, optionally filtered by
// status
func (r *GormExpertApplicationRepository) FindPage(ctx context.Context, req shared.PageRequest, status identity.ApplicationStatus) ([]identity.ExpertApplication, error) {
	q := r.db.WithContext(ctx).Model(&identity.ExpertApplication{})

	if status != "" {
		q = q.Where("status = ?", status)
	}

	q, err := pageScope(q, req)
	if err != nil {
		return nil, err
	}

	var apps []identity.ExpertApplication
	if err := q.Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Save creates or updates an application
func (r *GormExpertApplicationRepository) Save(ctx context.Context, app *identity.ExpertApplication) error {
	return r.db.WithContext(ctx).Save(app).Error
}
