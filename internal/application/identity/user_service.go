package identity

import (
	"context"

	"github.com/kenhgt247/me-be-sub001/internal/domain/identity"
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService handles profile and administrative account operations
type UserService struct {
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{userRepo: userRepo, logger: logger}
}

// GetByID returns a user's public projection
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	info := ToUserInfo(user)
	return &info, nil
}

// GetByPublicID returns a user's public projection by its slug-safe id
func (s *UserService) GetByPublicID(ctx context.Context, publicID string) (*UserInfo, error) {
	user, err := s.userRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	info := ToUserInfo(user)
	return &info, nil
}

// UpdateProfile updates a user's own display name, avatar and bio
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := user.UpdateProfile(input.DisplayName, input.AvatarURL, input.Bio); err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("Failed to save profile update", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update profile")
	}

	info := ToUserInfo(user)
	return &info, nil
}

// List returns one cursor page of users for the admin console
func (s *UserService) List(ctx context.Context, req shared.PageRequest) (*shared.Page[UserInfo], error) {
	req = req.Normalize()

	users, err := s.userRepo.FindPage(ctx, req)
	if err != nil {
		return nil, err
	}

	page := shared.NewPage(users, req.PageSize, userCursor)
	infos := make([]UserInfo, len(page.Items))
	for i := range page.Items {
		infos[i] = ToUserInfo(&page.Items[i])
	}

	return &shared.Page[UserInfo]{
		Items:      infos,
		NextCursor: page.NextCursor,
		HasMore:    page.HasMore,
	}, nil
}

// Unlock clears a lockout ahead of its expiry (admin)
func (s *UserService) Unlock(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	user.Unlock()

	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("Failed to save unlock", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to unlock account")
	}

	s.logger.Info("Account unlocked", zap.String("user_id", userID.String()))
	return nil
}

// Deactivate disables an account (admin)
func (s *UserService) Deactivate(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := user.Deactivate(); err != nil {
		return err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("Failed to save deactivation", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to deactivate account")
	}

	s.logger.Info("Account deactivated", zap.String("user_id", userID.String()))
	return nil
}
