package identity

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/kenhgt247/me-be-sub001/internal/domain/identity"
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/kenhgt247/me-be-sub001/internal/infrastructure/auth"
	"github.com/kenhgt247/me-be-sub001/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*identity.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[uuid.UUID]*identity.User)}
}

func (r *memoryUserRepo) FindByID(_ context.Context, id uuid.UUID) (*identity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, shared.ErrNotFound
}

func (r *memoryUserRepo) FindByPublicID(_ context.Context, publicID string) (*identity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.PublicID == publicID {
			copied := *u
			return &copied, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryUserRepo) FindByEmail(_ context.Context, email string) (*identity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == strings.ToLower(email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryUserRepo) FindPage(_ context.Context, req shared.PageRequest) ([]identity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []identity.User
	for _, u := range r.users {
		out = append(out, *u)
		if len(out) == req.PageSize {
			break
		}
	}
	return out, nil
}

func (r *memoryUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	return false, nil
}

func (r *memoryUserRepo) Save(_ context.Context, user *identity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memoryUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func newTestAuthService(t *testing.T) (*AuthService, *memoryUserRepo) {
	t.Helper()
	repo := newMemoryUserRepo()
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-at-least-32-characters!!",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "nuoicon-test",
		MaxRefreshCount:        5,
	})
	svc := NewAuthService(repo, jwtService, auth.NewMemoryTokenBlacklist(), zap.NewNop())
	return svc, repo
}

func TestAuthService_Register(t *testing.T) {
	t.Run("creates account and returns tokens", func(t *testing.T) {
		svc, _ := newTestAuthService(t)

		result, err := svc.Register(context.Background(), RegisterInput{
			Email:       "me@example.com",
			Password:    "S3curePass!",
			DisplayName: "Mẹ Bé Na",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.NotEmpty(t, result.RefreshToken)
		assert.Equal(t, "Bearer", result.TokenType)
		assert.Equal(t, "me@example.com", result.User.Email)
		assert.Equal(t, string(identity.RoleMember), result.User.Role)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		svc, _ := newTestAuthService(t)

		_, err := svc.Register(context.Background(), RegisterInput{
			Email: "me@example.com", Password: "S3curePass!", DisplayName: "A",
		})
		require.NoError(t, err)

		_, err = svc.Register(context.Background(), RegisterInput{
			Email: "me@example.com", Password: "OtherPass1!", DisplayName: "B",
		})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "EMAIL_TAKEN", domainErr.Code)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		svc, _ := newTestAuthService(t)
		_, err := svc.Register(context.Background(), RegisterInput{
			Email: "me@example.com", Password: "S3curePass!", DisplayName: "A",
		})
		require.NoError(t, err)

		result, err := svc.Login(context.Background(), LoginInput{
			Email: "me@example.com", Password: "S3curePass!",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.NotNil(t, result.User.LastLoginAt)
	})

	t.Run("unknown email yields the same error as a wrong password", func(t *testing.T) {
		svc, _ := newTestAuthService(t)

		_, err := svc.Login(context.Background(), LoginInput{
			Email: "nobody@example.com", Password: "whatever1!",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})

	t.Run("failed attempt is persisted", func(t *testing.T) {
		svc, repo := newTestAuthService(t)
		reg, err := svc.Register(context.Background(), RegisterInput{
			Email: "me@example.com", Password: "S3curePass!", DisplayName: "A",
		})
		require.NoError(t, err)

		_, err = svc.Login(context.Background(), LoginInput{
			Email: "me@example.com", Password: "wrong-password",
		})
		require.Error(t, err)

		stored, err := repo.FindByID(context.Background(), reg.User.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.FailedAttempts)
	})

	t.Run("account locks after repeated failures", func(t *testing.T) {
		svc, _ := newTestAuthService(t)
		_, err := svc.Register(context.Background(), RegisterInput{
			Email: "me@example.com", Password: "S3curePass!", DisplayName: "A",
		})
		require.NoError(t, err)

		for i := 0; i < 5; i++ {
			_, err = svc.Login(context.Background(), LoginInput{
				Email: "me@example.com", Password: "wrong-password",
			})
			require.Error(t, err)
		}

		_, err = svc.Login(context.Background(), LoginInput{
			Email: "me@example.com", Password: "S3curePass!",
		})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ACCOUNT_LOCKED", domainErr.Code)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("issues a fresh pair", func(t *testing.T) {
		svc, _ := newTestAuthService(t)
		reg, err := svc.Register(context.Background(), RegisterInput{
			Email: "me@example.com", Password: "S3curePass!", DisplayName: "A",
		})
		require.NoError(t, err)

		result, err := svc.RefreshToken(context.Background(), RefreshTokenInput{
			RefreshToken: reg.RefreshToken,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.NotEqual(t, reg.RefreshToken, result.RefreshToken)
	})

	t.Run("role change lands in the refreshed access token", func(t *testing.T) {
		svc, repo := newTestAuthService(t)
		reg, err := svc.Register(context.Background(), RegisterInput{
			Email: "me@example.com", Password: "S3curePass!", DisplayName: "A",
		})
		require.NoError(t, err)

		user, err := repo.FindByID(context.Background(), reg.User.ID)
		require.NoError(t, err)
		require.NoError(t, user.PromoteToExpert())
		require.NoError(t, repo.Save(context.Background(), user))

		result, err := svc.RefreshToken(context.Background(), RefreshTokenInput{
			RefreshToken: reg.RefreshToken,
		})
		require.NoError(t, err)

		jwtService := auth.NewJWTService(config.JWTConfig{
			Secret:                 "test-secret-at-least-32-characters!!",
			AccessTokenExpiration:  15 * time.Minute,
			RefreshTokenExpiration: 24 * time.Hour,
			Issuer:                 "nuoicon-test",
			MaxRefreshCount:        5,
		})
		claims, err := jwtService.ValidateAccessToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, string(identity.RoleExpert), claims.Role)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		svc, _ := newTestAuthService(t)

		_, err := svc.RefreshToken(context.Background(), RefreshTokenInput{
			RefreshToken: "not-a-token",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "TOKEN_INVALID", domainErr.Code)
	})

	t.Run("deactivated account cannot refresh", func(t *testing.T) {
		svc, repo := newTestAuthService(t)
		reg, err := svc.Register(context.Background(), RegisterInput{
			Email: "me@example.com", Password: "S3curePass!", DisplayName: "A",
		})
		require.NoError(t, err)

		user, err := repo.FindByID(context.Background(), reg.User.ID)
		require.NoError(t, err)
		require.NoError(t, user.Deactivate())
		require.NoError(t, repo.Save(context.Background(), user))

		_, err = svc.RefreshToken(context.Background(), RefreshTokenInput{
			RefreshToken: reg.RefreshToken,
		})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ACCOUNT_INACTIVE", domainErr.Code)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	svc, _ := newTestAuthService(t)
	reg, err := svc.Register(context.Background(), RegisterInput{
		Email: "me@example.com", Password: "S3curePass!", DisplayName: "A",
	})
	require.NoError(t, err)

	err = svc.ChangePassword(context.Background(), ChangePasswordInput{
		UserID:          reg.User.ID,
		CurrentPassword: "S3curePass!",
		NewPassword:     "EvenM0reSecure!",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), LoginInput{
		Email: "me@example.com", Password: "S3curePass!",
	})
	require.Error(t, err)

	_, err = svc.Login(context.Background(), LoginInput{
		Email: "me@example.com", Password: "EvenM0reSecure!",
	})
	require.NoError(t, err)
}
