package config

import (
	"fmt"
	"strings"
	"time"

	"maintenance-tracker-backend/internal/calendar"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`
	JWTIssuer string `mapstructure:"JWT_ISSUER"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Reference zone for "today" when validating scheduled dates
	AppTimezone string `mapstructure:"APP_TIMEZONE"`

	// Mail API configuration
	MailAPIURL     string `mapstructure:"MAIL_API_URL"`
	MailAPIKey     string `mapstructure:"MAIL_API_KEY"`
	MailFrom       string `mapstructure:"MAIL_FROM"`
	MailTimeoutSec int    `mapstructure:"MAIL_TIMEOUT_SEC"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// ALLOWED_ORIGINS from the environment arrives as one comma separated string
	config.AllowedOrigins = splitOrigins(config.AllowedOrigins)

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "maintenance_tracker")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_ISSUER", "maintenance-tracker")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	// Empty means the system zone
	viper.SetDefault("APP_TIMEZONE", "")

	// Mail defaults - no key means notifications are only logged
	viper.SetDefault("MAIL_API_URL", "https://api.resend.com/emails")
	viper.SetDefault("MAIL_API_KEY", "")
	viper.SetDefault("MAIL_FROM", "Maintenance Tracker <onboarding@resend.dev>")
	viper.SetDefault("MAIL_TIMEOUT_SEC", 10)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func splitOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		for _, part := range strings.Split(o, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseURL == "" && config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if _, err := calendar.LoadLocation(config.AppTimezone); err != nil {
		return fmt.Errorf("APP_TIMEZONE %q is not a known zone: %w", config.AppTimezone, err)
	}

	if config.MailAPIKey != "" && config.MailFrom == "" {
		return fmt.Errorf("MAIL_FROM is required when MAIL_API_KEY is set")
	}

	if config.MailTimeoutSec <= 0 {
		return fmt.Errorf("MAIL_TIMEOUT_SEC must be positive")
	}

	return nil
}

// Location returns the reference zone for date validation. Load has already
// checked the name, so an error here falls back to the system zone.
func (c *Config) Location() *time.Location {
	loc, err := calendar.LoadLocation(c.AppTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// MailTimeout returns the per-request timeout for the mail API
func (c *Config) MailTimeout() time.Duration {
	return time.Duration(c.MailTimeoutSec) * time.Second
}

// MailEnabled reports whether notifications go to the mail API
func (c *Config) MailEnabled() bool {
	return c.MailAPIKey != ""
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
