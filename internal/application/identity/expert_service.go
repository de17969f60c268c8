package identity

import (
	"context"
	"errors"

	"github.com/kenhgt247/me-be-sub001/internal/domain/identity"
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ExpertService handles expert applications and their review
type ExpertService struct {
	appRepo  identity.ExpertApplicationRepository
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewExpertService creates a new ExpertService
func NewExpertService(
	appRepo identity.ExpertApplicationRepository,
	userRepo identity.UserRepository,
	logger *zap.Logger,
) *ExpertService {
	return &ExpertService{appRepo: appRepo, userRepo: userRepo, logger: logger}
}

// Apply submits an expert application for the given user
func (s *ExpertService) Apply(ctx context.Context, input ApplyExpertInput) (*ApplicationInfo, error) {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user.Role != identity.RoleMember {
		return nil, shared.NewDomainError("NOT_ELIGIBLE", "Only regular members can apply for the expert role")
	}

	if _, err := s.appRepo.FindPendingByUser(ctx, input.UserID); err == nil {
		return nil, shared.NewDomainError("ALREADY_APPLIED", "A pending application already exists")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	app, err := identity.NewExpertApplication(input.UserID, input.Credentials, input.Specialty)
	if err != nil {
		return nil, err
	}

	if err := s.appRepo.Save(ctx, app); err != nil {
		s.logger.Error("Failed to save expert application", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to submit application")
	}

	s.logger.Info("Expert application submitted",
		zap.String("user_id", input.UserID.String()),
		zap.String("application_id", app.ID.String()))

	info := ToApplicationInfo(app)
	return &info, nil
}

// GetOwn returns the user's pending application, if any
func (s *ExpertService) GetOwn(ctx context.Context, userID uuid.UUID) (*ApplicationInfo, error) {
	app, err := s.appRepo.FindPendingByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	info := ToApplicationInfo(app)
	return &info, nil
}

// List returns one cursor page of applications, optionally filtered by
// status (admin)
func (s *ExpertService) List(ctx context.Context, req shared.PageRequest, status identity.ApplicationStatus) (*shared.Page[ApplicationInfo], error) {
	req = req.Normalize()

	apps, err := s.appRepo.FindPage(ctx, req, status)
	if err != nil {
		return nil, err
	}

	page := shared.NewPage(apps, req.PageSize, applicationCursor)
	infos := make([]ApplicationInfo, len(page.Items))
	for i := range page.Items {
		infos[i] = ToApplicationInfo(&page.Items[i])
	}

	return &shared.Page[ApplicationInfo]{
		Items:      infos,
		NextCursor: page.NextCursor,
		HasMore:    page.HasMore,
	}, nil
}

// Review approves or rejects an application. Approval promotes the
// applicant to the expert role in the same flow.
func (s *ExpertService) Review(ctx context.Context, input ReviewApplicationInput) (*ApplicationInfo, error) {
	app, err := s.appRepo.FindByID(ctx, input.ApplicationID)
	if err != nil {
		return nil, err
	}

	if input.Approve {
		if err := app.Approve(input.ReviewerID, input.Note); err != nil {
			return nil, err
		}

		user, err := s.userRepo.FindByID(ctx, app.UserID)
		if err != nil {
			return nil, err
		}
		if err := user.PromoteToExpert(); err != nil {
			return nil, err
		}
		if err := s.userRepo.Save(ctx, user); err != nil {
			s.logger.Error("Failed to promote user", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to promote user")
		}
	} else {
		if err := app.Reject(input.ReviewerID, input.Note); err != nil {
			return nil, err
		}
	}

	if err := s.appRepo.Save(ctx, app); err != nil {
		s.logger.Error("Failed to save application review", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save review")
	}

	s.logger.Info("Expert application reviewed",
		zap.String("application_id", app.ID.String()),
		zap.Bool("approved", input.Approve))

	info := ToApplicationInfo(app)
	return &info, nil
}
