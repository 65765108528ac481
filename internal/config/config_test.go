package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8080},
		Collection: CollectionConfig{
			BaseURL: "https://store.example.com/api/collections/tenant-1",
			APIKey:  "key",
			Timeout: 30 * time.Second,
		},
		Auth: AuthConfig{
			JWTSecret:      "test-secret-at-least-32-chars-long!!",
			JWTIssuer:      "bugtrackr",
			AccessTokenTTL: 15 * time.Minute,
		},
		Log: LogConfig{Level: "info", Format: "json"},
	}
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()
	require.NoError(t, validConfig().Validate())
}

func TestValidate_ShortSecret(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Auth.JWTSecret = "short"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt_secret")
}

func TestValidate_BadBaseURL(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Collection.BaseURL = "not-a-url"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_url")
}

func TestValidate_NonPositiveTimeout(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Collection.Timeout = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}

func TestValidate_BadLogFormat(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Log.Format = "xml"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.format")
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("COLLECTION_BASE_URL", "https://store.example.com/api/collections/tenant-1")
	t.Setenv("COLLECTION_API_KEY", "key")
	t.Setenv("AUTH_JWT_SECRET", "test-secret-at-least-32-chars-long!!")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Collection.Timeout)
	assert.Equal(t, "bugtrackr", cfg.Auth.JWTIssuer)
	assert.Equal(t, "json", cfg.Log.Format)
}
