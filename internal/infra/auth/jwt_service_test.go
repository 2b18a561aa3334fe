package auth

import (
	"testing"
	"time"

	"verdeluxe/config"
	domainerrors "verdeluxe/internal/domain/errors"
	"verdeluxe/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	adminID := uuid.New()
	roles := []string{"admin"}

	accessToken, refreshToken, err := jwtService.GenerateTokens(adminID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, err := jwtService.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, adminID, accessClaims.UserID)
	assert.Equal(t, roles, accessClaims.Roles)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), accessClaims.ExpiresAt.Time, 5*time.Second)

	refreshClaims, err := jwtService.ValidateToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, adminID, refreshClaims.UserID)
	assert.Nil(t, refreshClaims.Roles)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), refreshClaims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_ConfiguredTTL(t *testing.T) {
	cfg := newTestJWTConfig()
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: time.Minute, RefreshTokenTTL: time.Hour}

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, jwtService.GetAccessTokenDuration())
}

func TestJWTService_RequiresDistinctSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)

	cfg := newTestJWTConfig()
	cfg.SecretKey.Refresh = cfg.SecretKey.Access
	_, err = NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_InvalidTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.NewString(),
		"exp":  time.Now().Add(-time.Minute).Unix(),
		"type": service.TokenTypeAccess,
	})
	expiredToken, err := expired.SignedString([]byte(newTestJWTConfig().SecretKey.Access))
	require.NoError(t, err)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.NewString(),
		"exp":  time.Now().Add(time.Minute).Unix(),
		"type": service.TokenTypeAccess,
	})
	forgedToken, err := forged.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	// An access-typed token signed with the refresh secret must not verify.
	confused := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.NewString(),
		"exp":  time.Now().Add(time.Minute).Unix(),
		"type": service.TokenTypeAccess,
	})
	confusedToken, err := confused.SignedString([]byte(newTestJWTConfig().SecretKey.Refresh))
	require.NoError(t, err)

	noExpiry := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.NewString(),
		"type": service.TokenTypeAccess,
	})
	noExpiryToken, err := noExpiry.SignedString([]byte(newTestJWTConfig().SecretKey.Access))
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":         "not-a-jwt",
		"empty":           "",
		"expired":         expiredToken,
		"wrong secret":    forgedToken,
		"secret confused": confusedToken,
		"missing exp":     noExpiryToken,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			claims, err := jwtService.ValidateToken(token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
		})
	}
}
