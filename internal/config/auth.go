package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// AuthConfig holds settings for the API's admin-token authentication.
// Mutating endpoints (profile writes, generation, ingestion) require a
// bearer token issued against the admin password.
type AuthConfig struct {
	JWTSecret         string
	TokenTTLHours     int
	AdminPasswordHash string
	BcryptCost        int
}

// NewAuthConfig creates an auth configuration from environment variables.
// It reads JWT_SECRET and ADMIN_PASSWORD_HASH (both required),
// TOKEN_TTL_HOURS (default: 24) and BCRYPT_COST (default: 12).
func NewAuthConfig() (*AuthConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	hash := os.Getenv("ADMIN_PASSWORD_HASH")
	if hash == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD_HASH is required but not set")
	}

	ttl := 24
	if v := os.Getenv("TOKEN_TTL_HOURS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid TOKEN_TTL_HOURS: %q", v)
		}
		ttl = n
	}

	cost := bcrypt.DefaultCost + 2
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < bcrypt.MinCost || n > bcrypt.MaxCost {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %q", v)
		}
		cost = n
	}

	return &AuthConfig{
		JWTSecret:         secret,
		TokenTTLHours:     ttl,
		AdminPasswordHash: hash,
		BcryptCost:        cost,
	}, nil
}

// VerifyAdminPassword compares a candidate password against the
// configured admin password hash.
func (c *AuthConfig) VerifyAdminPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(c.AdminPasswordHash), []byte(password)); err != nil {
		return fmt.Errorf("password verification failed: %w", err)
	}
	return nil
}

// HashPassword produces a bcrypt hash at the configured cost. Used by
// the CLI to mint ADMIN_PASSWORD_HASH values.
func (c *AuthConfig) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// HashPassword hashes a password at the default termsmith cost without
// requiring a full auth configuration.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost+2)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
