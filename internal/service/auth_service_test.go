package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"studio-api/internal/jwt"
	"studio-api/internal/model"
	"studio-api/internal/service"
)

func newAuthService(t *testing.T) (service.AuthService, *fakeUserRepo) {
	t.Setenv("JWT_SECRET", "test-secret-for-auth-service")
	repo := newFakeUserRepo()
	return service.NewAuthService(repo, jwt.NewMemoryBlacklist()), repo
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string, active bool) *model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &model.User{
		Email:        email,
		Name:         "Test User",
		PasswordHash: string(hash),
		IsActive:     active,
	}
	id, err := repo.Create(context.Background(), user)
	require.NoError(t, err)
	user.ID = id

	return user
}

func TestAuthService_RegisterUser(t *testing.T) {
	svc, repo := newAuthService(t)

	user, access, refresh, err := svc.RegisterUser(context.Background(), "olena@studio.dev", "password123", "Olena")

	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.True(t, user.IsActive)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)

	stored := repo.users[user.ID]
	assert.NotEqual(t, "password123", stored.PasswordHash)
}

func TestAuthService_LoginUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, repo := newAuthService(t)
		seedUser(t, repo, "olena@studio.dev", "password123", true)

		user, access, _, err := svc.LoginUser(context.Background(), "olena@studio.dev", "password123")

		require.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotNil(t, user.LastLogin)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		svc, repo := newAuthService(t)
		seedUser(t, repo, "olena@studio.dev", "password123", true)

		_, _, _, err := svc.LoginUser(context.Background(), "olena@studio.dev", "nope")

		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		svc, _ := newAuthService(t)

		_, _, _, err := svc.LoginUser(context.Background(), "ghost@studio.dev", "password123")

		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("DisabledAccount", func(t *testing.T) {
		svc, repo := newAuthService(t)
		seedUser(t, repo, "olena@studio.dev", "password123", false)

		_, _, _, err := svc.LoginUser(context.Background(), "olena@studio.dev", "password123")

		assert.ErrorIs(t, err, service.ErrAccountDisabled)
	})
}

func TestAuthService_LogoutUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-for-auth-service")

	blacklist := jwt.NewMemoryBlacklist()
	repo := newFakeUserRepo()
	svc := service.NewAuthService(repo, blacklist)
	user := seedUser(t, repo, "olena@studio.dev", "password123", true)

	access, _, err := jwt.GenerateTokens(user)
	require.NoError(t, err)

	claims, err := jwt.ValidateToken(access)
	require.NoError(t, err)

	require.NoError(t, svc.LogoutUser(context.Background(), claims))

	blocked, err := blacklist.Contains(context.Background(), claims["jti"].(string))
	require.NoError(t, err)
	assert.True(t, blocked)
}

func TestAuthService_LogoutUser_MissingJTI(t *testing.T) {
	svc, _ := newAuthService(t)

	err := svc.LogoutUser(context.Background(), map[string]interface{}{"sub": "1"})

	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestAuthService_ChangePassword(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, repo := newAuthService(t)
		user := seedUser(t, repo, "olena@studio.dev", "password123", true)
		oldHash := repo.users[user.ID].PasswordHash

		err := svc.ChangePassword(context.Background(), user.ID, "password123", "newpassword456")

		require.NoError(t, err)
		assert.NotEqual(t, oldHash, repo.users[user.ID].PasswordHash)
		assert.NotNil(t, repo.users[user.ID].PasswordChangedAt)
	})

	t.Run("WrongCurrentPassword", func(t *testing.T) {
		svc, repo := newAuthService(t)
		user := seedUser(t, repo, "olena@studio.dev", "password123", true)

		err := svc.ChangePassword(context.Background(), user.ID, "nope", "newpassword456")

		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("SamePassword", func(t *testing.T) {
		svc, repo := newAuthService(t)
		user := seedUser(t, repo, "olena@studio.dev", "password123", true)

		err := svc.ChangePassword(context.Background(), user.ID, "password123", "password123")

		assert.ErrorIs(t, err, service.ErrSamePassword)
	})
}

func TestAuthService_UpdateProfile(t *testing.T) {
	svc, repo := newAuthService(t)
	user := seedUser(t, repo, "olena@studio.dev", "password123", true)

	name := "Olena K."
	avatar := "/uploads/avatar.png"
	updated, err := svc.UpdateProfile(context.Background(), user.ID, &name, &avatar)

	require.NoError(t, err)
	assert.Equal(t, "Olena K.", updated.Name)
	require.NotNil(t, updated.AvatarURL)
	assert.Equal(t, "/uploads/avatar.png", *updated.AvatarURL)
}
