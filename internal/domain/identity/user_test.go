package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates active member with valid inputs", func(t *testing.T) {
		user, err := NewUser("Me@Example.Com", "s3cretpass", "  Mẹ Bống  ")
		require.NoError(t, err)
		require.NotNil(t, user)

		assert.Equal(t, "me@example.com", user.Email)
		assert.Equal(t, "Mẹ Bống", user.DisplayName)
		assert.Equal(t, RoleMember, user.Role)
		assert.Equal(t, UserStatusActive, user.Status)
		assert.NotEmpty(t, user.PublicID)
		assert.NotContains(t, user.PublicID, "-")
		assert.NotEqual(t, "s3cretpass", user.PasswordHash)
	})

	t.Run("publishes UserRegistered event", func(t *testing.T) {
		user, err := NewUser("a@example.com", "s3cretpass", "A")
		require.NoError(t, err)

		events := user.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeUserRegistered, events[0].EventType())
	})

	t.Run("fails with malformed email", func(t *testing.T) {
		_, err := NewUser("not-an-email", "s3cretpass", "A")
		require.Error(t, err)
	})

	t.Run("fails with short password", func(t *testing.T) {
		_, err := NewUser("a@example.com", "short", "A")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 8 characters")
	})

	t.Run("fails with empty display name", func(t *testing.T) {
		_, err := NewUser("a@example.com", "s3cretpass", "   ")
		require.Error(t, err)
	})
}

func TestUserAuthenticate(t *testing.T) {
	newUser := func(t *testing.T) *User {
		t.Helper()
		user, err := NewUser("a@example.com", "s3cretpass", "A")
		require.NoError(t, err)
		return user
	}

	t.Run("succeeds with correct password", func(t *testing.T) {
		user := newUser(t)
		require.NoError(t, user.Authenticate("s3cretpass"))
		assert.NotNil(t, user.LastLoginAt)
		assert.Zero(t, user.FailedAttempts)
	})

	t.Run("counts failures and locks after the limit", func(t *testing.T) {
		user := newUser(t)
		for i := 0; i < maxFailedAttempts; i++ {
			require.Error(t, user.Authenticate("wrongpass"))
		}
		assert.Equal(t, UserStatusLocked, user.Status)
		assert.True(t, user.IsLocked())

		err := user.Authenticate("s3cretpass")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "locked")
	})

	t.Run("success resets the failure counter", func(t *testing.T) {
		user := newUser(t)
		require.Error(t, user.Authenticate("wrongpass"))
		require.Error(t, user.Authenticate("wrongpass"))
		require.NoError(t, user.Authenticate("s3cretpass"))
		assert.Zero(t, user.FailedAttempts)
	})

	t.Run("deactivated accounts cannot sign in", func(t *testing.T) {
		user := newUser(t)
		require.NoError(t, user.Deactivate())
		require.Error(t, user.Authenticate("s3cretpass"))
	})

	t.Run("unlock restores access", func(t *testing.T) {
		user := newUser(t)
		for i := 0; i < maxFailedAttempts; i++ {
			_ = user.Authenticate("wrongpass")
		}
		require.True(t, user.IsLocked())

		user.Unlock()
		require.NoError(t, user.Authenticate("s3cretpass"))
	})
}

func TestUserRoles(t *testing.T) {
	t.Run("promote to expert", func(t *testing.T) {
		user, err := NewUser("a@example.com", "s3cretpass", "A")
		require.NoError(t, err)

		require.NoError(t, user.PromoteToExpert())
		assert.Equal(t, RoleExpert, user.Role)
		assert.True(t, user.CanVerifyAnswers())
		assert.False(t, user.CanModerate())

		err = user.PromoteToExpert()
		require.Error(t, err)
	})

	t.Run("admin moderates and verifies", func(t *testing.T) {
		user, err := NewUser("a@example.com", "s3cretpass", "A")
		require.NoError(t, err)
		user.Role = RoleAdmin

		assert.True(t, user.CanModerate())
		assert.True(t, user.CanVerifyAnswers())
	})
}

func TestUserChangePassword(t *testing.T) {
	user, err := NewUser("a@example.com", "s3cretpass", "A")
	require.NoError(t, err)

	t.Run("rejects wrong current password", func(t *testing.T) {
		require.Error(t, user.ChangePassword("nope", "newpassword1"))
	})

	t.Run("accepts and applies new password", func(t *testing.T) {
		require.NoError(t, user.ChangePassword("s3cretpass", "newpassword1"))
		require.NoError(t, user.Authenticate("newpassword1"))
	})
}

func TestExpertApplication(t *testing.T) {
	userID := uuid.New()
	reviewerID := uuid.New()

	t.Run("submit and approve", func(t *testing.T) {
		app, err := NewExpertApplication(userID, "Pediatric nurse, 10 years", "nutrition")
		require.NoError(t, err)
		assert.True(t, app.IsPending())

		require.NoError(t, app.Approve(reviewerID, "verified license"))
		assert.Equal(t, ApplicationStatusApproved, app.Status)
		assert.Equal(t, &reviewerID, app.ReviewerID)
		assert.NotNil(t, app.ReviewedAt)

		events := app.GetDomainEvents()
		require.Len(t, events, 2)
		assert.Equal(t, EventTypeExpertApplicationReviewed, events[1].EventType())
	})

	t.Run("cannot review twice", func(t *testing.T) {
		app, err := NewExpertApplication(userID, "Credentials", "")
		require.NoError(t, err)

		require.NoError(t, app.Reject(reviewerID, "insufficient detail"))
		err = app.Approve(reviewerID, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already been reviewed")
	})

	t.Run("fails with empty credentials", func(t *testing.T) {
		_, err := NewExpertApplication(userID, "   ", "")
		require.Error(t, err)
	})
}
