package config

import (
	"fmt"
	"net/url"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if err := validateURL(c.Auth.ProviderURL); err != nil {
		return fmt.Errorf("auth.provider_url: %w", err)
	}
	if c.Auth.MinPasswordLength < 6 {
		return fmt.Errorf("auth.min_password_length must be >= 6 (got %d)", c.Auth.MinPasswordLength)
	}

	if err := c.Listing.validate(); err != nil {
		return fmt.Errorf("listing: %w", err)
	}

	if c.Storage.MaxAvatarBytes <= 0 {
		return fmt.Errorf("storage.max_avatar_bytes must be > 0 (got %d)", c.Storage.MaxAvatarBytes)
	}
	if c.Storage.PublicBaseURL != "" {
		if err := validateURL(c.Storage.PublicBaseURL); err != nil {
			return fmt.Errorf("storage.public_base_url: %w", err)
		}
	}

	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be > 0 when cache is enabled (got %v)", c.Cache.TTL)
	}

	if c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("rate_limit.auth_per_minute must be > 0 (got %d)", c.RateLimit.AuthPerMinute)
	}

	return nil
}

func (l *ListingConfig) validate() error {
	if l.CreatorsPageSize <= 0 {
		return fmt.Errorf("creators_page_size must be > 0 (got %d)", l.CreatorsPageSize)
	}
	if l.WorkflowsPageSize <= 0 {
		return fmt.Errorf("workflows_page_size must be > 0 (got %d)", l.WorkflowsPageSize)
	}
	if l.FeaturedCreators < 0 || l.FeaturedWorkflows < 0 {
		return fmt.Errorf("featured counts must be >= 0")
	}
	if l.FetchLimit <= 0 {
		return fmt.Errorf("fetch_limit must be > 0 (got %d)", l.FetchLimit)
	}
	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https (got %q)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required")
	}
	return nil
}
