package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Database.MaxConns < 1 {
		return fmt.Errorf("database.max_conns must be >= 1 (got %d)", c.Database.MaxConns)
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns must not exceed max_conns (got %d > %d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if c.Content.ReviewQueueLimit < 0 {
		return fmt.Errorf("content.review_queue_limit must be >= 0 (got %d)", c.Content.ReviewQueueLimit)
	}
	if c.Content.MaxListLimit < 1 {
		return fmt.Errorf("content.max_list_limit must be >= 1 (got %d)", c.Content.MaxListLimit)
	}

	return nil
}
