package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sweetshop/sweet-shop-backend/internal/config"
	"github.com/sweetshop/sweet-shop-backend/internal/dto"
	"github.com/sweetshop/sweet-shop-backend/internal/models"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	cfg := &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: 168 * time.Hour,
	}
	return NewAuthService(newTestDB(t), cfg)
}

func TestRegister(t *testing.T) {
	svc := newAuthService(t)

	resp, err := svc.Register(&dto.RegisterRequest{
		Email: "a@x.com", Password: "secret1", Name: "A",
	})
	require.NoError(t, err)

	assert.NotZero(t, resp.User.ID)
	assert.Equal(t, "a@x.com", resp.User.Email)
	assert.Equal(t, "A", resp.User.Name)
	assert.Equal(t, models.RoleUser, resp.User.Role)
	assert.NotEmpty(t, resp.Token)

	// The stored password is a hash, not the plaintext.
	var stored models.User
	require.NoError(t, svc.db.First(&stored, resp.User.ID).Error)
	assert.NotEqual(t, "secret1", stored.Password)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	req := &dto.RegisterRequest{Email: "dup@x.com", Password: "secret1", Name: "Dup"}
	_, err := svc.Register(req)
	require.NoError(t, err)

	_, err = svc.Register(req)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterTokenClaims(t *testing.T) {
	svc := newAuthService(t)

	resp, err := svc.Register(&dto.RegisterRequest{
		Email: "claims@x.com", Password: "secret1", Name: "Claims",
	})
	require.NoError(t, err)

	token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "claims@x.com", claims["email"])
	assert.Equal(t, models.RoleUser, claims["role"])
	assert.NotEmpty(t, claims["sub"])

	// 7-day validity window.
	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	iat, err := claims.GetIssuedAt()
	require.NoError(t, err)
	assert.Equal(t, 168*time.Hour, exp.Sub(iat.Time))
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(&dto.RegisterRequest{
		Email: "a@x.com", Password: "secret1", Name: "A",
	})
	require.NoError(t, err)

	resp, err := svc.Login(&dto.LoginRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleUser, resp.User.Role)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(&dto.RegisterRequest{
		Email: "known@x.com", Password: "secret1", Name: "Known",
	})
	require.NoError(t, err)

	_, wrongPassword := svc.Login(&dto.LoginRequest{Email: "known@x.com", Password: "nope"})
	_, unknownEmail := svc.Login(&dto.LoginRequest{Email: "ghost@x.com", Password: "secret1"})

	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}
