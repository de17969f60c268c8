package identity

import (
	"strings"
	"time"

	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
)

// ApplicationStatus represents the review state of an expert application
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// ExpertApplication is a member's request for the expert role, reviewed by
// an administrator
type ExpertApplication struct {
	shared.BaseAggregateRoot
	UserID       uuid.UUID         `gorm:"type:uuid;not null;index"`
	Credentials  string            `gorm:"type:text;not null"`
	Specialty    string            `gorm:"type:varchar(100)"`
	Status       ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	ReviewerID   *uuid.UUID        `gorm:"type:uuid"`
	ReviewerNote string            `gorm:"type:text"`
	ReviewedAt   *time.Time
}

// TableName returns the table name for GORM
func (ExpertApplication) TableName() string {
	return "expert_applications"
}

// NewExpertApplication creates a pending application
func NewExpertApplication(userID uuid.UUID, credentials, specialty string) (*ExpertApplication, error) {
	if strings.TrimSpace(credentials) == "" {
		return nil, shared.NewDomainError("INVALID_CREDENTIALS_TEXT", "Credentials cannot be empty")
	}
	if len(credentials) > 5000 {
		return nil, shared.NewDomainError("INVALID_CREDENTIALS_TEXT", "Credentials cannot exceed 5000 characters")
	}

	app := &ExpertApplication{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Credentials:       strings.TrimSpace(credentials),
		Specialty:         strings.TrimSpace(specialty),
		Status:            ApplicationStatusPending,
	}

	app.AddDomainEvent(NewExpertApplicationSubmittedEvent(app))

	return app, nil
}

// Approve marks the application approved. The caller promotes the user.
func (a *ExpertApplication) Approve(reviewerID uuid.UUID, note string) error {
	return a.review(ApplicationStatusApproved, reviewerID, note)
}

// Reject marks the application rejected with a reviewer note
func (a *ExpertApplication) Reject(reviewerID uuid.UUID, note string) error {
	return a.review(ApplicationStatusRejected, reviewerID, note)
}

func (a *ExpertApplication) review(status ApplicationStatus, reviewerID uuid.UUID, note string) error {
	if a.Status != ApplicationStatusPending {
		return shared.NewDomainError("ALREADY_REVIEWED", "Application has already been reviewed")
	}

	now := time.Now()
	a.Status = status
	a.ReviewerID = &reviewerID
	a.ReviewerNote = strings.TrimSpace(note)
	a.ReviewedAt = &now
	a.UpdatedAt = now
	a.IncrementVersion()

	a.AddDomainEvent(NewExpertApplicationReviewedEvent(a))

	return nil
}

// IsPending reports whether the application still awaits review
func (a *ExpertApplication) IsPending() bool {
	return a.Status == ApplicationStatusPending
}
