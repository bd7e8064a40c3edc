package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, "HS256", cfg.Auth.JWTAlgorithm)
	assert.Equal(t, 30, cfg.Auth.TokenTTLMin)
	assert.NotEmpty(t, cfg.Auth.JWTSecret, "dev boot gets a built-in secret")
	assert.Equal(t, "ollama", cfg.AI.Provider)
	assert.Equal(t, "http://localhost:11434", cfg.AI.Endpoint)
	assert.Equal(t, "llama3.1", cfg.AI.Model)
	assert.Equal(t, 4000, cfg.Summarize.ChunkLimit)
	assert.Equal(t, 25, cfg.MaxUploadMB)
	assert.Contains(t, cfg.DSN, "shelfmark")
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
port: 9090
env: Production
dsn: "user:pass@tcp(db:3306)/books?parseTime=true"
redis_url: redis://cache:6379/1
allowed_origins:
  - example.com
  - "*.example.com"
auth:
  jwt_secret: super-secret
  jwt_algorithm: hs512
  token_ttl_minutes: 60
ai:
  provider: openai
  api_key: sk-test
  model: gpt-4o-mini
summarize:
  chunk_limit: 2000
max_upload_mb: 8
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, "user:pass@tcp(db:3306)/books?parseTime=true", cfg.DSN)
	assert.Equal(t, []string{"example.com", "*.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, "HS512", cfg.Auth.JWTAlgorithm)
	assert.Equal(t, 60, cfg.Auth.TokenTTLMin)
	assert.Equal(t, "openai", cfg.AI.Provider)
	assert.Equal(t, 2000, cfg.Summarize.ChunkLimit)
	assert.Equal(t, 8, cfg.MaxUploadMB)
}

func TestLoadValidation(t *testing.T) {
	t.Run("production requires a secret", func(t *testing.T) {
		path := writeConfig(t, "env: production\n")
		_, err := Load(path)
		assert.ErrorContains(t, err, "jwt_secret")
	})

	t.Run("unsupported algorithm", func(t *testing.T) {
		path := writeConfig(t, "auth:\n  jwt_algorithm: RS256\n")
		_, err := Load(path)
		assert.ErrorContains(t, err, "jwt_algorithm")
	})

	t.Run("unsupported provider", func(t *testing.T) {
		path := writeConfig(t, "ai:\n  provider: bard\n")
		_, err := Load(path)
		assert.ErrorContains(t, err, "provider")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeConfig(t, "port: [not a number\n")
		_, err := Load(path)
		assert.Error(t, err)
	})
}
