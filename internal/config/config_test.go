package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/rent_a_shelf")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.ServerPort)
	require.Equal(t, 30*time.Minute, cfg.SessionTokenTTL)
	require.Equal(t, 15*time.Minute, cfg.ResetTokenTTL)
	require.Equal(t, 5*time.Second, cfg.StoreTimeout)
	require.Equal(t, 30*time.Minute, cfg.DBMaxConnLifetime)
	require.Equal(t, 5*time.Minute, cfg.DBMaxConnIdleTime)
	require.Equal(t, 30*time.Second, cfg.DBHealthCheckPeriod)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/rent_a_shelf")
	t.Setenv("SESSION_TOKEN_TTL", "1h")
	t.Setenv("RESET_TOKEN_TTL", "10m")
	t.Setenv("DB_MAX_CONN_LIFETIME", "1h")
	t.Setenv("CORS_ORIGINS", "http://localhost, http://localhost:5173")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, time.Hour, cfg.SessionTokenTTL)
	require.Equal(t, 10*time.Minute, cfg.ResetTokenTTL)
	require.Equal(t, time.Hour, cfg.DBMaxConnLifetime)
	require.Equal(t, []string{"http://localhost", "http://localhost:5173"}, cfg.CORSOrigins)
}

func TestValidateRequiredFields(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/rent_a_shelf")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DATABASE_URL", "")

	_, err = Load()
	require.Error(t, err)
}
