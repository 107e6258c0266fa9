package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	defaultAddr             = ":8080"
	defaultDatabaseURL      = "leadcrm.db"
	defaultPlaceholderEmail = "placeholder.com"
	defaultImportMaxRows    = "10000"
)

// Config holds the runtime configuration loaded from the environment.
type Config struct {
	AppEnv      string
	Addr        string
	DatabaseURL string

	// InternalToken protects the bulk-import endpoint.
	InternalToken string

	// PlaceholderEmailDomain is used to synthesize an email address from
	// the phone number when an imported row carries none.
	PlaceholderEmailDomain string

	// ImportMaxRows caps the number of data rows accepted per import run.
	ImportMaxRows int

	CORSAllowedOrigins []string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Addr = strings.TrimSpace(getEnv("ADDR", defaultAddr))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.InternalToken = strings.TrimSpace(os.Getenv("CRM_INTERNAL_TOKEN"))
	cfg.PlaceholderEmailDomain = strings.TrimSpace(getEnv("PLACEHOLDER_EMAIL_DOMAIN", defaultPlaceholderEmail))

	var err error
	cfg.ImportMaxRows, err = parseIntEnv("IMPORT_MAX_ROWS", defaultImportMaxRows)
	if err != nil {
		return nil, err
	}

	if extra := os.Getenv("CORS_ALLOWED_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
			}
		}
	}

	return cfg, nil
}

func (c *Config) IsProd() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseIntEnv(key, fallback string) (int, error) {
	raw := getEnv(key, fallback)
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return v, nil
}
