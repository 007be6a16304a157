package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vasthra/storefront/internal/config"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CATALOG_API_URL", "https://api.example.com/catalog")
	t.Setenv("SESSION_SECRET", "a-very-secret-key-for-testing-!")
}

func TestFromEnv_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.GetAppAddr())
	assert.Equal(t, "https://api.example.com/catalog", cfg.GetCatalogAPIURL())
	assert.Equal(t, 10*time.Second, cfg.GetCatalogTimeout())
	assert.Equal(t, 5*time.Minute, cfg.GetCatalogCacheTTL())
	assert.Equal(t, "data/images", cfg.GetImageCacheDir())
}

func TestFromEnv_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ADDR", ":9000")
	t.Setenv("CATALOG_TIMEOUT", "3s")
	t.Setenv("CATALOG_CACHE_TTL", "30s")

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.GetAppAddr())
	assert.Equal(t, 3*time.Second, cfg.GetCatalogTimeout())
	assert.Equal(t, 30*time.Second, cfg.GetCatalogCacheTTL())
}

func TestFromEnv_MissingFeedURLFails(t *testing.T) {
	t.Setenv("CATALOG_API_URL", "")
	t.Setenv("SESSION_SECRET", "a-very-secret-key-for-testing-!")

	_, err := config.FromEnv()
	assert.Error(t, err)
}

func TestFromEnv_RejectsNonURLFeed(t *testing.T) {
	t.Setenv("CATALOG_API_URL", "not a url")
	t.Setenv("SESSION_SECRET", "a-very-secret-key-for-testing-!")

	_, err := config.FromEnv()
	assert.Error(t, err)
}

func TestFromEnv_RejectsShortSessionSecret(t *testing.T) {
	t.Setenv("CATALOG_API_URL", "https://api.example.com/catalog")
	t.Setenv("SESSION_SECRET", "short")

	_, err := config.FromEnv()
	assert.Error(t, err)
}

func TestFromEnv_RejectsMalformedDuration(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CATALOG_TIMEOUT", "soon")

	_, err := config.FromEnv()
	assert.Error(t, err)
}
