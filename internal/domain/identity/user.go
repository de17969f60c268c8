package identity

import (
	"net/mail"
	"strings"
	"time"

	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// UserRole represents the privilege level of a community member
type UserRole string

const (
	RoleMember UserRole = "member"
	RoleExpert UserRole = "expert"
	RoleAdmin  UserRole = "admin"
)

// UserStatus represents the status of a user account
type UserStatus string

const (
	UserStatusActive      UserStatus = "active"
	UserStatusLocked      UserStatus = "locked"
	UserStatusDeactivated UserStatus = "deactivated"
)

const (
	bcryptCost        = 12
	maxFailedAttempts = 5
	lockDuration      = 15 * time.Minute
)

// User is the aggregate root for a community member account
type User struct {
	shared.BaseAggregateRoot
	PublicID       string `gorm:"type:varchar(32);not null;uniqueIndex"`
	Email          string `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash   string `gorm:"type:varchar(100);not null"`
	DisplayName    string `gorm:"type:varchar(100);not null"`
	AvatarURL      string `gorm:"type:text"`
	Bio            string `gorm:"type:text"`
	Role           UserRole   `gorm:"type:varchar(20);not null;default:'member'"`
	Status         UserStatus `gorm:"type:varchar(20);not null;default:'active'"`
	FailedAttempts int        `gorm:"not null;default:0"`
	LockedUntil    *time.Time
	LastLoginAt    *time.Time
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new active member account
func NewUser(email, password, displayName string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if err := validateDisplayName(displayName); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	publicID := shared.NewPublicID()
	if err := shared.ValidatePublicID(publicID); err != nil {
		return nil, err
	}

	user := &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PublicID:          publicID,
		Email:             email,
		PasswordHash:      string(hash),
		DisplayName:       strings.TrimSpace(displayName),
		Role:              RoleMember,
		Status:            UserStatusActive,
	}

	user.AddDomainEvent(NewUserRegisteredEvent(user))

	return user, nil
}

// Authenticate verifies the password and records the attempt outcome.
// After maxFailedAttempts consecutive failures the account locks for
// lockDuration.
func (u *User) Authenticate(password string) error {
	if u.Status == UserStatusDeactivated {
		return shared.ErrForbidden
	}
	if u.IsLocked() {
		return shared.ErrAccountLocked
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		u.FailedAttempts++
		if u.FailedAttempts >= maxFailedAttempts {
			until := time.Now().Add(lockDuration)
			u.LockedUntil = &until
			u.Status = UserStatusLocked
			u.AddDomainEvent(NewUserLockedEvent(u))
		}
		u.UpdatedAt = time.Now()
		u.IncrementVersion()
		return shared.NewDomainError("INVALID_CREDENTIALS", "Email or password is incorrect")
	}

	now := time.Now()
	u.FailedAttempts = 0
	u.LockedUntil = nil
	if u.Status == UserStatusLocked {
		u.Status = UserStatusActive
	}
	u.LastLoginAt = &now
	u.UpdatedAt = now
	u.IncrementVersion()
	return nil
}

// IsLocked reports whether the account is currently locked
func (u *User) IsLocked() bool {
	if u.Status != UserStatusLocked {
		return false
	}
	if u.LockedUntil != nil && time.Now().After(*u.LockedUntil) {
		return false
	}
	return true
}

// ChangePassword replaces the password after verifying the current one
func (u *User) ChangePassword(current, next string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(current)); err != nil {
		return shared.NewDomainError("INVALID_CREDENTIALS", "Current password is incorrect")
	}
	if err := validatePassword(next); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcryptCost)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	u.PasswordHash = string(hash)
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// UpdateProfile updates display name, avatar and bio
func (u *User) UpdateProfile(displayName, avatarURL, bio string) error {
	if err := validateDisplayName(displayName); err != nil {
		return err
	}

	u.DisplayName = strings.TrimSpace(displayName)
	u.AvatarURL = avatarURL
	u.Bio = bio
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// PromoteToExpert grants the expert role
func (u *User) PromoteToExpert() error {
	if u.Role == RoleExpert {
		return shared.NewDomainError("ALREADY_EXPERT", "User already has the expert role")
	}
	if u.Role == RoleAdmin {
		return shared.NewDomainError("INVALID_STATE", "Administrators cannot be demoted to expert")
	}

	u.Role = RoleExpert
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	u.AddDomainEvent(NewUserPromotedEvent(u))
	return nil
}

// Unlock clears a lockout ahead of its expiry
func (u *User) Unlock() {
	u.FailedAttempts = 0
	u.LockedUntil = nil
	if u.Status == UserStatusLocked {
		u.Status = UserStatusActive
	}
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}

// Deactivate disables the account
func (u *User) Deactivate() error {
	if u.Status == UserStatusDeactivated {
		return shared.NewDomainError("ALREADY_DEACTIVATED", "Account is already deactivated")
	}

	u.Status = UserStatusDeactivated
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// CanModerate reports whether the user may hide content and resolve reports
func (u *User) CanModerate() bool {
	return u.Role == RoleAdmin
}

// CanVerifyAnswers reports whether the user may mark answers expert-verified
func (u *User) CanVerifyAnswers() bool {
	return u.Role == RoleExpert || u.Role == RoleAdmin
}

func validateEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 255 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 255 characters")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return shared.NewDomainError("INVALID_EMAIL", "Email address is malformed")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 72 {
		// bcrypt truncates beyond 72 bytes
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 72 characters")
	}
	return nil
}

func validateDisplayName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Display name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Display name cannot exceed 100 characters")
	}
	return nil
}
