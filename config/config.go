package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config carries all deployment settings. It is constructed once at startup
// and passed by reference into service constructors, so no code reads the
// process environment at call time.
type Config struct {
	StoreDomain           string `toml:"store_domain"`
	StorefrontAccessToken string `toml:"storefront_access_token"`
	AdminAccessToken      string `toml:"admin_access_token"`
	APIVersion            string `toml:"api_version"`
	Port                  string `toml:"port"`
	SecureCookies         bool   `toml:"secure_cookies"`
}

// Load reads configuration from the environment, with an optional TOML file
// (CONFIG_FILE) providing defaults that the environment overrides.
func Load() (*Config, error) {
	cfg := Config{}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		_, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return nil, fmt.Errorf("error reading config file %s: %s", path, err)
		}
	}

	applyEnv(&cfg)

	if cfg.APIVersion == "" {
		cfg.APIVersion = "2025-07"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if cfg.StoreDomain == "" {
		return nil, fmt.Errorf("missing store domain (SHOPIFY_STORE_DOMAIN)")
	}

	return &cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SHOPIFY_STORE_DOMAIN"); v != "" {
		cfg.StoreDomain = v
	}
	if v := os.Getenv("SHOPIFY_STOREFRONT_ACCESS_TOKEN"); v != "" {
		cfg.StorefrontAccessToken = v
	}
	if v := os.Getenv("SHOPIFY_ADMIN_ACCESS_TOKEN"); v != "" {
		cfg.AdminAccessToken = v
	}
	if v := os.Getenv("SHOPIFY_API_VERSION"); v != "" {
		cfg.APIVersion = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("SECURE_COOKIES"); v != "" {
		secure, err := strconv.ParseBool(v)
		if err == nil {
			cfg.SecureCookies = secure
		}
	}
}
