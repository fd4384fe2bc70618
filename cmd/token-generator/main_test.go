package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/fxconvert-api/internal/config"
	"github.com/phrazzld/fxconvert-api/internal/domain"
	"github.com/phrazzld/fxconvert-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            "test-jwt-secret-that-is-32-chars-long",
		TokenLifetimeMinutes: 5,
	}
}

func TestWriteToken(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	var out bytes.Buffer

	require.NoError(t, writeToken(context.Background(), authConfig(), userID, domain.RoleSponsor, false, &out))

	svc, err := auth.NewJWTService(authConfig())
	require.NoError(t, err)
	claims, err := svc.ValidateToken(context.Background(), strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, domain.RoleSponsor, claims.Role)
}

func TestWriteToken_Header(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, writeToken(context.Background(), authConfig(), uuid.New(), domain.RoleOwner, true, &out))

	assert.True(t, strings.HasPrefix(out.String(), "Authorization: Bearer "))
}

func TestWriteToken_BadSecret(t *testing.T) {
	t.Parallel()

	cfg := authConfig()
	cfg.JWTSecret = "short"

	err := writeToken(context.Background(), cfg, uuid.New(), domain.RoleOwner, false, &bytes.Buffer{})
	assert.ErrorContains(t, err, "JWT service")
}

func TestRun_RejectsBadFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown role", []string{"--role", "ADMIN"}, "role"},
		{"bad user", []string{"--user", "not-a-uuid"}, "invalid user ID"},
		{"unknown flag", []string{"--nope"}, "unknown flag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := run(tt.args, &bytes.Buffer{})
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestRun_NeedsOnlyAuthConfig(t *testing.T) {
	t.Setenv("FXCONVERT_AUTH_JWT_SECRET", "test-jwt-secret-that-is-32-chars-long")
	t.Setenv("FXCONVERT_AUTH_TOKEN_LIFETIME_MINUTES", "")
	t.Setenv("FXCONVERT_AUTH_ALLOWED_ROLES", "")
	t.Setenv("FXCONVERT_EXCHANGE_RATE_API_KEY", "")
	t.Setenv("API_KEY", "")
	t.Setenv(config.ConfigDirEnv, "")

	userID := uuid.New()
	var out bytes.Buffer
	require.NoError(t, run([]string{"--role", "OWNER", "--user", userID.String()}, &out))

	svc, err := auth.NewJWTService(authConfig())
	require.NoError(t, err)
	claims, err := svc.ValidateToken(context.Background(), strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, domain.RoleOwner, claims.Role)
}
