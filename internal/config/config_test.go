package config_test

import (
	"testing"
	"time"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 720, cfg.SessionExpiryHours)
	assert.Equal(t, 720*time.Hour, cfg.SessionExpiry())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	require.Error(t, err)
}

func TestLoad_SessionExpiry(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"explicit value", "24", 24},
		{"non-numeric falls back", "soon", 720},
		{"zero falls back", "0", 720},
		{"negative falls back", "-5", 720},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "test-secret")
			t.Setenv("SESSION_EXPIRY_HOURS", tt.value)

			cfg, err := config.Load()
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.SessionExpiryHours)
		})
	}
}

func TestIsProduction(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}
