package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("Missing store domain", func(t *testing.T) {
		clearEnv(t)

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("From environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SHOPIFY_STORE_DOMAIN", "example.myshopify.com")
		t.Setenv("SHOPIFY_STOREFRONT_ACCESS_TOKEN", "shpca_123")

		cfg, err := Load()
		assert.NoError(t, err)
		assert.Equal(t, "example.myshopify.com", cfg.StoreDomain)
		assert.Equal(t, "shpca_123", cfg.StorefrontAccessToken)
		assert.Equal(t, "2025-07", cfg.APIVersion)
		assert.Equal(t, "8080", cfg.Port)
	})

	t.Run("Environment overrides file", func(t *testing.T) {
		clearEnv(t)

		path := filepath.Join(t.TempDir(), "config.toml")
		err := os.WriteFile(path, []byte("store_domain = \"file.myshopify.com\"\napi_version = \"2024-01\"\n"), 0600)
		assert.NoError(t, err)

		t.Setenv("CONFIG_FILE", path)
		t.Setenv("SHOPIFY_STORE_DOMAIN", "env.myshopify.com")

		cfg, err := Load()
		assert.NoError(t, err)
		assert.Equal(t, "env.myshopify.com", cfg.StoreDomain)
		assert.Equal(t, "2024-01", cfg.APIVersion)
	})
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"CONFIG_FILE", "SHOPIFY_STORE_DOMAIN", "SHOPIFY_STOREFRONT_ACCESS_TOKEN",
		"SHOPIFY_ADMIN_ACCESS_TOKEN", "SHOPIFY_API_VERSION", "PORT", "SECURE_COOKIES"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}
