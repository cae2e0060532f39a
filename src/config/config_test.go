package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DB_DSN", "host=localhost dbname=quanti")
	t.Setenv("QUANTI_JWT_SECRET", "s3cret")
	t.Setenv("SEQUENCESCAPE_API_ROOT", "http://sequencescape.example/api/1")
	t.Setenv("SEQUENCESCAPE_UUID_CACHE_TTL", "5m")
	t.Setenv("ALLOWED_ORIGINS", "http://a.example, http://b.example,")
	t.Setenv("TRACING_ENABLED", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "host=localhost dbname=quanti", cfg.Database.DSN)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret, "prefixed variable should be used as fallback")
	assert.Equal(t, "http://sequencescape.example/api/1", cfg.Sequencescape.APIRoot)
	assert.Equal(t, 5*time.Minute, cfg.Sequencescape.UUIDCacheTTL)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.Server.AllowedOrigins)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, "searches", cfg.Sequencescape.SearchesCollection)
	assert.Equal(t, ":8080", cfg.Server.Host)
}

func TestLoad_YAMLOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := `
database:
  dsn: "file::memory:"
auth:
  jwt_secret: from-yaml
i18n:
  default_locale: es
sequencescape:
  searches_collection: finders
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file::memory:", cfg.Database.DSN)
	assert.Equal(t, "from-yaml", cfg.Auth.JWTSecret)
	assert.Equal(t, "es", cfg.I18n.DefaultLocale)
	assert.Equal(t, "finders", cfg.Sequencescape.SearchesCollection)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("DB_DSN", "dsn")
	t.Setenv("JWT_SECRET", "secret")

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("TOKEN_LIFETIME", "soon")
		_, err := Load("")
		assert.ErrorContains(t, err, "TOKEN_LIFETIME")
	})

	t.Run("bad boolean", func(t *testing.T) {
		t.Setenv("DB_SEED", "maybe")
		_, err := Load("")
		assert.ErrorContains(t, err, "DB_SEED")
	})
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.ErrorContains(t, cfg.Validate(), "DB_DSN")

	cfg.Database.DSN = "dsn"
	assert.ErrorContains(t, cfg.Validate(), "JWT_SECRET")

	cfg.Auth.JWTSecret = "secret"
	assert.NoError(t, cfg.Validate())

	cfg.Sequencescape.APIRoot = "http://ss"
	cfg.Sequencescape.SearchesCollection = ""
	assert.Error(t, cfg.Validate())
}
