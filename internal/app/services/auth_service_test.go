package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/models"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/models/dto"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/pkg/apperrors"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/pkg/auth"
)

func setupAuthService(t *testing.T) (*AuthService, *mockUserRepo, *mockTokenRepo) {
	t.Helper()
	userRepo := newMockUserRepo()
	tokenRepo := newMockTokenRepo()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "itvs-test",
	})

	hashed, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)
	err = userRepo.Create(context.Background(), &models.User{
		Name:     "Mykola",
		Email:    "mykola@lpnu.ua",
		Password: hashed,
		Role:     models.RoleAuthor,
	})
	require.NoError(t, err)

	return NewAuthService(userRepo, tokenRepo, jwtService), userRepo, tokenRepo
}

func TestAuthService_Login(t *testing.T) {
	svc, _, tokenRepo := setupAuthService(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "mykola@lpnu.ua",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	require.NotNil(t, resp.User)
	assert.Equal(t, "mykola@lpnu.ua", resp.User.Email)
	assert.Contains(t, tokenRepo.tokens, resp.RefreshToken)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _, _ := setupAuthService(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "nobody@lpnu.ua",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, _ := setupAuthService(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "mykola@lpnu.ua",
		Password: "incorrect",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

// Refresh tokens are single use: a successful exchange revokes the presented
// token and a second exchange with it must fail.
func TestAuthService_Refresh_SingleUse(t *testing.T) {
	svc, _, tokenRepo := setupAuthService(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, dto.LoginRequest{Email: "mykola@lpnu.ua", Password: "correct-horse"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)
	assert.True(t, tokenRepo.tokens[login.RefreshToken].Revoked)

	_, err = svc.Refresh(ctx, login.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}

func TestAuthService_Refresh_UnknownToken(t *testing.T) {
	svc, _, _ := setupAuthService(t)

	_, err := svc.Refresh(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestAuthService_Refresh_ExpiredToken(t *testing.T) {
	svc, _, tokenRepo := setupAuthService(t)
	ctx := context.Background()

	err := tokenRepo.Create(ctx, &models.RefreshToken{
		UserID:    1,
		Token:     "stale",
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, "stale")
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestAuthService_Logout_UnknownTokenIgnored(t *testing.T) {
	svc, _, _ := setupAuthService(t)

	assert.NoError(t, svc.Logout(context.Background(), "no-such-token"))
}

func TestAuthService_GetProfile(t *testing.T) {
	svc, _, _ := setupAuthService(t)

	user, err := svc.GetProfile(context.Background(), models.Session{UserID: 1, Role: models.RoleAuthor})
	require.NoError(t, err)
	assert.Equal(t, "Mykola", user.Name)
}
