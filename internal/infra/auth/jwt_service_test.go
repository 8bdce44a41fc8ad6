package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfredtoussaint-cpu/dealshaq/config"
)

func testJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"
	cfg.Auth = &config.AuthConfig{
		AccessTokenTTL: 15 * time.Minute,
		RefreshTTL:     7 * 24 * time.Hour,
	}

	return cfg
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	userID := uuid.New()
	access, refresh, err := svc.GenerateTokens(userID, []string{"consumer"})
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{"consumer"}, claims.Roles)
	assert.Equal(t, "access", claims.Type)
}

func TestJWTService_RefreshTokenRejectedAsAccess(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	_, refresh, err := svc.GenerateTokens(uuid.New(), []string{"consumer"})
	require.NoError(t, err)

	// Refresh tokens are signed with a different secret.
	_, err = svc.ValidateToken(refresh)
	assert.Error(t, err)
}

func TestJWTService_TamperedTokenRejected(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	access, _, err := svc.GenerateTokens(uuid.New(), []string{"consumer"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(access + "x")
	assert.Error(t, err)
}

func TestJWTService_RequiresSecrets(t *testing.T) {
	cfg := testJWTConfig()
	cfg.SecretKey.Access = ""

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}
