package auth

import (
	"testing"
	"time"

	"market/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(access, refresh string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = access
	cfg.SecretKey.Refresh = refresh

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(
		"test_access_secret_key_very_long_for_testing",
		"test_refresh_secret_key_very_long_for_testing",
	))
	require.NoError(t, err)

	roles := []string{"producer"}

	accessToken, refreshToken, err := jwtService.GenerateTokens("user-1", roles)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	accessClaims, err := jwtService.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", accessClaims.UserID())
	assert.Equal(t, roles, accessClaims.Roles)
	assert.Equal(t, "access", accessClaims.Type)

	refreshClaims, err := jwtService.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", refreshClaims.UserID())
	assert.Nil(t, refreshClaims.Roles) // Refresh tokens don't have roles
	assert.Equal(t, "refresh", refreshClaims.Type)
}

func TestJWTService_RejectsWrongTokenKind(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("access-secret", "refresh-secret"))
	require.NoError(t, err)

	accessToken, refreshToken, err := jwtService.GenerateTokens("user-1", []string{"admin"})
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(refreshToken)
	assert.Error(t, err)

	_, err = jwtService.ValidateRefreshToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("access-secret", "refresh-secret"))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("access-secret", "refresh-secret"))
	require.NoError(t, err)

	impl := svc.(*jwtService)
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	impl.now = func() time.Time { return issued }

	accessToken, _, err := impl.GenerateTokens("user-1", nil)
	require.NoError(t, err)

	impl.now = func() time.Time { return issued.Add(defaultAccessTTL + time.Minute) }

	_, err = impl.ValidateToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_ConfiguredTTL(t *testing.T) {
	cfg := newTestConfig("access-secret", "refresh-secret")
	cfg.Auth = &config.AuthConfig{RefreshTTL: 48 * time.Hour}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 48*time.Hour, svc.GetRefreshTokenDuration())
}

func TestJWTService_EmptySecrets(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("", ""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}
