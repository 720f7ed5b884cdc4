package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("PRICEPERSIZE_SERVER_PORT")
		os.Unsetenv("PRICEPERSIZE_SERVER_ENVIRONMENT")
		os.Unsetenv("PRICEPERSIZE_SERVER_ALLOWED_ORIGINS")
		os.Unsetenv("PRICEPERSIZE_GEMINI_API_KEY")
		os.Unsetenv("PRICEPERSIZE_GEMINI_BASE_URL")
		os.Unsetenv("PRICEPERSIZE_GEMINI_MODEL")
		os.Unsetenv("PRICEPERSIZE_DATABASE_URL")
		os.Unsetenv("PRICEPERSIZE_CACHE_PENDING_TTL")
		os.Unsetenv("PRICEPERSIZE_UPLOAD_MAX_SIZE_MB")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		// Set required API key
		os.Setenv("PRICEPERSIZE_GEMINI_API_KEY", "test-key")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Gemini.BaseURL != "https://generativelanguage.googleapis.com" {
			t.Errorf("Gemini.BaseURL = %s, want https://generativelanguage.googleapis.com", cfg.Gemini.BaseURL)
		}
		if cfg.Gemini.Model != "gemini-2.5-flash" {
			t.Errorf("Gemini.Model = %s, want gemini-2.5-flash", cfg.Gemini.Model)
		}
		if cfg.Cache.PendingTTL != 30*time.Minute {
			t.Errorf("Cache.PendingTTL = %v, want 30m", cfg.Cache.PendingTTL)
		}
		if cfg.Upload.MaxSizeMB != 10 {
			t.Errorf("Upload.MaxSizeMB = %d, want 10", cfg.Upload.MaxSizeMB)
		}
		if len(cfg.Upload.AllowedTypes) == 0 {
			t.Error("Upload.AllowedTypes is empty, want image types")
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PRICEPERSIZE_SERVER_PORT", "9090")
		os.Setenv("PRICEPERSIZE_SERVER_ENVIRONMENT", "production")
		os.Setenv("PRICEPERSIZE_GEMINI_API_KEY", "custom-api-key")
		os.Setenv("PRICEPERSIZE_GEMINI_BASE_URL", "https://custom.api.com")
		os.Setenv("PRICEPERSIZE_GEMINI_MODEL", "gemini-2.5-pro")
		os.Setenv("PRICEPERSIZE_DATABASE_URL", "postgres://localhost:5432/pantry")
		os.Setenv("PRICEPERSIZE_CACHE_PENDING_TTL", "1h")
		os.Setenv("PRICEPERSIZE_UPLOAD_MAX_SIZE_MB", "20")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Gemini.APIKey != "custom-api-key" {
			t.Errorf("Gemini.APIKey = %s, want custom-api-key", cfg.Gemini.APIKey)
		}
		if cfg.Gemini.BaseURL != "https://custom.api.com" {
			t.Errorf("Gemini.BaseURL = %s, want https://custom.api.com", cfg.Gemini.BaseURL)
		}
		if cfg.Gemini.Model != "gemini-2.5-pro" {
			t.Errorf("Gemini.Model = %s, want gemini-2.5-pro", cfg.Gemini.Model)
		}
		if cfg.Database.URL != "postgres://localhost:5432/pantry" {
			t.Errorf("Database.URL = %s, want postgres://localhost:5432/pantry", cfg.Database.URL)
		}
		if cfg.Cache.PendingTTL != time.Hour {
			t.Errorf("Cache.PendingTTL = %v, want 1h", cfg.Cache.PendingTTL)
		}
		if cfg.Upload.MaxSizeMB != 20 {
			t.Errorf("Upload.MaxSizeMB = %d, want 20", cfg.Upload.MaxSizeMB)
		}
	})

	t.Run("fails validation when API key is missing", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for missing API key")
		}
		if err != nil && err.Error() != "invalid configuration: Gemini API key is required (set PRICEPERSIZE_GEMINI_API_KEY)" {
			t.Errorf("Load() error = %v, want 'Gemini API key is required'", err)
		}
	})

	t.Run("fails validation for non-positive upload size", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PRICEPERSIZE_GEMINI_API_KEY", "test-key")
		os.Setenv("PRICEPERSIZE_UPLOAD_MAX_SIZE_MB", "0")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for zero upload size")
		}
	})
}
