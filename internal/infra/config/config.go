package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Development fallbacks; any real deployment must override both.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "autoescuelas2024"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	Port          string
	DatabaseURL   string
	AdminUsername string
	AdminPassword string
	MeiliHost     string
	MeiliAPIKey   string
	CloudinaryURL string
	LogLevel      string
	Environment   string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	cfg.Port = os.Getenv("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	cfg.AdminUsername = os.Getenv("ADMIN_USERNAME")
	if cfg.AdminUsername == "" {
		cfg.AdminUsername = DefaultAdminUsername
		logrus.Warn("ADMIN_USERNAME not set, using the development fallback")
	}

	cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = DefaultAdminPassword
		logrus.Warn("ADMIN_PASSWORD not set, using the development fallback")
	}

	cfg.MeiliHost = os.Getenv("MEILI_HOST")
	if cfg.MeiliHost == "" {
		cfg.MeiliHost = "http://localhost:7700"
	}
	cfg.MeiliAPIKey = os.Getenv("MEILI_API_KEY")

	cfg.CloudinaryURL = os.Getenv("CLOUDINARY_URL")

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	return cfg, nil
}
