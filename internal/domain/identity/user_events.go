package identity

import (
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constants
const (
	AggregateTypeUser              = "User"
	AggregateTypeExpertApplication = "ExpertApplication"
)

// Event type constants
const (
	EventTypeUserRegistered               = "UserRegistered"
	EventTypeUserLocked                   = "UserLocked"
	EventTypeUserPromoted                 = "UserPromoted"
	EventTypeExpertApplicationSubmitted   = "ExpertApplicationSubmitted"
	EventTypeExpertApplicationReviewed    = "ExpertApplicationReviewed"
)

// UserRegisteredEvent is published when a new account is created
type UserRegisteredEvent struct {
	shared.BaseDomainEvent
	UserID      uuid.UUID `json:"user_id"`
	PublicID    string    `json:"public_id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
}

// NewUserRegisteredEvent creates a new UserRegisteredEvent
func NewUserRegisteredEvent(user *User) *UserRegisteredEvent {
	return &UserRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserRegistered, AggregateTypeUser, user.ID),
		UserID:          user.ID,
		PublicID:        user.PublicID,
		Email:           user.Email,
		DisplayName:     user.DisplayName,
	}
}

// UserLockedEvent is published when repeated failed logins lock an account
type UserLockedEvent struct {
	shared.BaseDomainEvent
	UserID         uuid.UUID `json:"user_id"`
	FailedAttempts int       `json:"failed_attempts"`
}

// NewUserLockedEvent creates a new UserLockedEvent
func NewUserLockedEvent(user *User) *UserLockedEvent {
	return &UserLockedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserLocked, AggregateTypeUser, user.ID),
		UserID:          user.ID,
		FailedAttempts:  user.FailedAttempts,
	}
}

// UserPromotedEvent is published when a member gains the expert role
type UserPromotedEvent struct {
	shared.BaseDomainEvent
	UserID uuid.UUID `json:"user_id"`
	Role   UserRole  `json:"role"`
}

// NewUserPromotedEvent creates a new UserPromotedEvent
func NewUserPromotedEvent(user *User) *UserPromotedEvent {
	return &UserPromotedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserPromoted, AggregateTypeUser, user.ID),
		UserID:          user.ID,
		Role:            user.Role,
	}
}

// ExpertApplicationSubmittedEvent is published when a member applies for the expert role
type ExpertApplicationSubmittedEvent struct {
	shared.BaseDomainEvent
	ApplicationID uuid.UUID `json:"application_id"`
	UserID        uuid.UUID `json:"user_id"`
}

// NewExpertApplicationSubmittedEvent creates a new ExpertApplicationSubmittedEvent
func NewExpertApplicationSubmittedEvent(app *ExpertApplication) *ExpertApplicationSubmittedEvent {
	return &ExpertApplicationSubmittedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeExpertApplicationSubmitted, AggregateTypeExpertApplication, app.ID),
		ApplicationID:   app.ID,
		UserID:          app.UserID,
	}
}

// ExpertApplicationReviewedEvent is published when an administrator decides an application
type ExpertApplicationReviewedEvent struct {
	shared.BaseDomainEvent
	ApplicationID uuid.UUID         `json:"application_id"`
	UserID        uuid.UUID         `json:"user_id"`
	Status        ApplicationStatus `json:"status"`
}

// NewExpertApplicationReviewedEvent creates a new ExpertApplicationReviewedEvent
func NewExpertApplicationReviewedEvent(app *ExpertApplication) *ExpertApplicationReviewedEvent {
	return &ExpertApplicationReviewedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeExpertApplicationReviewed, AggregateTypeExpertApplication, app.ID),
		ApplicationID:   app.ID,
		UserID:          app.UserID,
		Status:          app.Status,
	}
}
