package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-backend/internal/config"
	"hotel-backend/internal/models"
)

func testManager(secret string) *JWTManager {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.ExpirationHours = 24
	cfg.JWT.Issuer = "hotel-backend"
	return NewJWTManager(cfg)
}

func TestTokenRoundTrip(t *testing.T) {
	m := testManager("test-secret")
	user := &models.User{ID: 5, Email: "desk@example.com", Role: models.RoleStaff, IsActive: true}

	token, err := m.GenerateToken(user)
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 5, claims.UserID)
	assert.Equal(t, "desk@example.com", claims.Email)
	assert.Equal(t, models.RoleStaff, claims.Role)
	assert.True(t, claims.IsActive)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := testManager("secret-a").GenerateToken(&models.User{ID: 1, Email: "a@b.c"})
	require.NoError(t, err)

	_, err = testManager("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestTempTokenIsNotASessionToken(t *testing.T) {
	m := testManager("test-secret")
	user := &models.User{ID: 9, Email: "mgr@example.com", Role: models.RoleManager}

	temp, err := m.GenerateTempToken(user)
	require.NoError(t, err)

	claims, err := m.ValidateTempToken(temp)
	require.NoError(t, err)
	assert.Equal(t, 9, claims.UserID)
	assert.Equal(t, "2fa_pending", claims.Type)

	// A full session token must not pass temp validation.
	session, err := m.GenerateToken(user)
	require.NoError(t, err)
	_, err = m.ValidateTempToken(session)
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("front-desk-123")
	require.NoError(t, err)
	assert.True(t, VerifyPassword(hash, "front-desk-123"))
	assert.False(t, VerifyPassword(hash, "wrong"))
}
