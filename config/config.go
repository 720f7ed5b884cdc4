package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Gemini   GeminiConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Upload   UploadConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// GeminiConfig holds receipt extraction API configuration
type GeminiConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// DatabaseConfig holds the hosted datastore configuration
type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	PendingTTL time.Duration `mapstructure:"pending_ttl"`
}

// UploadConfig holds receipt upload guard configuration
type UploadConfig struct {
	MaxSizeMB    int      `mapstructure:"max_size_mb"`
	AllowedTypes []string `mapstructure:"allowed_types"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/pricepersize/")

	v.SetEnvPrefix("PRICEPERSIZE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover everything
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Gemini defaults. The empty api_key default registers the key so the
	// env var binds through Unmarshal.
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com")
	v.SetDefault("gemini.model", "gemini-2.5-flash")

	// Database defaults (empty means the pantry store is disabled)
	v.SetDefault("database.url", "")

	// Cache defaults
	v.SetDefault("cache.pending_ttl", "30m")

	// Upload defaults
	v.SetDefault("upload.max_size_mb", 10)
	v.SetDefault("upload.allowed_types", []string{
		"image/jpeg", "image/png", "image/webp", "image/heic", "image/heif",
	})
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Gemini.APIKey == "" {
		return fmt.Errorf("Gemini API key is required (set PRICEPERSIZE_GEMINI_API_KEY)")
	}

	if config.Upload.MaxSizeMB <= 0 {
		return fmt.Errorf("upload max size must be positive, got: %d", config.Upload.MaxSizeMB)
	}

	return nil
}
