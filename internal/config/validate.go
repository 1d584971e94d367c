package config

import (
	"fmt"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically; a failure here must abort startup, never be
// deferred to request time.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be positive (got %v)", c.Auth.AccessTokenTTL)
	}

	if c.Auth.CodeTTL <= 0 {
		return fmt.Errorf("auth.code_ttl must be positive (got %v)", c.Auth.CodeTTL)
	}

	if c.Catalog.MinYear >= time.Now().Year() {
		return fmt.Errorf("catalog.min_year must precede the current year (got %d)", c.Catalog.MinYear)
	}

	if c.RateLimit.Enabled && c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("rate_limit.per_minute must be positive when enabled (got %d)", c.RateLimit.PerMinute)
	}

	if c.Mail.Enabled() && c.Mail.Port <= 0 {
		return fmt.Errorf("mail.port must be positive (got %d)", c.Mail.Port)
	}

	return nil
}
