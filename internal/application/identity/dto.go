package identity

import (
	"time"

	"github.com/kenhgt247/me-be-sub001/internal/domain/identity"
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
)

// RegisterInput contains input for account registration
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
}

// LoginInput contains input for authentication
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult contains tokens and user info returned on login
type LoginResult struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
	User                  UserInfo  `json:"user"`
}

// RefreshTokenInput contains input for token refresh
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenResult contains the refreshed token pair
type RefreshTokenResult struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// LogoutInput contains input for logout
type LogoutInput struct {
	UserID      uuid.UUID
	AccessJTI   string
	AccessTTL   time.Duration
	AllSessions bool
}

// UpdateProfileInput contains input for profile updates
type UpdateProfileInput struct {
	DisplayName string
	AvatarURL   string
	Bio         string
}

// ChangePasswordInput contains input for password changes
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// ApplyExpertInput contains input for an expert application
type ApplyExpertInput struct {
	UserID      uuid.UUID
	Credentials string
	Specialty   string
}

// ReviewApplicationInput contains input for reviewing an expert application
type ReviewApplicationInput struct {
	ApplicationID uuid.UUID
	ReviewerID    uuid.UUID
	Approve       bool
	Note          string
}

// UserInfo is the public projection of a user account
type UserInfo struct {
	ID          uuid.UUID  `json:"id"`
	PublicID    string     `json:"public_id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	AvatarURL   string     `json:"avatar_url,omitempty"`
	Bio         string     `json:"bio,omitempty"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// ToUserInfo maps a user aggregate to its public projection
func ToUserInfo(u *identity.User) UserInfo {
	return UserInfo{
		ID:          u.ID,
		PublicID:    u.PublicID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
		Bio:         u.Bio,
		Role:        string(u.Role),
		Status:      string(u.Status),
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}

// ApplicationInfo is the projection of an expert application
type ApplicationInfo struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	Credentials  string     `json:"credentials"`
	Specialty    string     `json:"specialty,omitempty"`
	Status       string     `json:"status"`
	ReviewerNote string     `json:"reviewer_note,omitempty"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ToApplicationInfo maps an expert application to its projection
func ToApplicationInfo(a *identity.ExpertApplication) ApplicationInfo {
	return ApplicationInfo{
		ID:           a.ID,
		UserID:       a.UserID,
		Credentials:  a.Credentials,
		Specialty:    a.Specialty,
		Status:       string(a.Status),
		ReviewerNote: a.ReviewerNote,
		ReviewedAt:   a.ReviewedAt,
		CreatedAt:    a.CreatedAt,
	}
}

// userCursor builds the keyset cursor for a user row
func userCursor(u identity.User) shared.Cursor {
	return shared.EncodeCursor(u.CreatedAt, u.ID)
}

// applicationCursor builds the keyset cursor for an application row
func applicationCursor(a identity.ExpertApplication) shared.Cursor {
	return shared.EncodeCursor(a.CreatedAt, a.ID)
}
