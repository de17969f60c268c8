package identity

import (
	"context"

	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// FindByID finds a user by primary key
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByPublicID finds a user by its slug-safe public id
	FindByPublicID(ctx context.Context, publicID string) (*User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindPage returns one cursor page ordered by created_at DESC, id DESC.
	// Search narrows by substring match on email and display name.
	FindPage(ctx context.Context, req shared.PageRequest) ([]User, error)

	// ExistsByEmail checks whether an account with the email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Save creates or updates a user
	Save(ctx context.Context, user *User) error

	// Delete removes a user
	Delete(ctx context.Context, id uuid.UUID) error
}

// ExpertApplicationRepository defines the interface for expert application persistence
type ExpertApplicationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ExpertApplication, error)

	// FindPendingByUser returns the user's open application, if any
	FindPendingByUser(ctx context.Context, userID uuid.UUID) (*ExpertApplication, error)

	// FindPage returns one cursor page of applications, optionally filtered
	// by status
	FindPage(ctx context.Context, req shared.PageRequest, status ApplicationStatus) ([]ExpertApplication, error)

	Save(ctx context.Context, app *ExpertApplication) error
}
