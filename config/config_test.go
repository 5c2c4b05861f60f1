package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigRequiresDatabaseInProduction(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "")
	_, err := LoadConfig()
	assert.EqualError(t, err, "DATABASE_URL is required in production")

	t.Setenv("APP_ENV", "development")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.DBUrl)
}

func TestLoadConfigParsesEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("APP_ENV", "Production")
	t.Setenv("DATABASE_URL", "postgres://app@db:5432/jobs")
	t.Setenv("CANDIDATE_TOKEN_TTL", "3600")
	t.Setenv("EMPLOYER_TOKEN_TTL", "168h")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("TRUST_PROXY", "true")
	t.Setenv("DB_MAX_CONNS", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, time.Hour, cfg.CandidateTokenTTL)
	assert.Equal(t, 168*time.Hour, cfg.EmployerTokenTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.True(t, cfg.TrustProxy)
	assert.Equal(t, 10, cfg.DBMaxConns)
}
