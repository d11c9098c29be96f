package auth

import (
	"fmt"
	"time"
)

// DefaultTokenTTL is the lifetime of tokens minted by GenerateJWT
const DefaultTokenTTL = 8 * time.Hour

// AuthConfig holds the token settings for the application
type AuthConfig struct {
	JWTSecret string
	Issuer    string
	TokenTTL  time.Duration
}

// NewAuthConfig builds an AuthConfig, filling in the default lifetime
func NewAuthConfig(secret, issuer string) *AuthConfig {
	return &AuthConfig{
		JWTSecret: secret,
		Issuer:    issuer,
		TokenTTL:  DefaultTokenTTL,
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.Issuer == "" {
		return fmt.Errorf("JWT issuer is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token lifetime must be positive")
	}
	return nil
}
