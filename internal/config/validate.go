package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	d.Driver = strings.ToLower(strings.TrimSpace(d.Driver))

	switch d.Driver {
	case DriverPostgres:
		if d.DSN == "" {
			return fmt.Errorf("dsn is required for the %s driver", DriverPostgres)
		}
		if d.MaxConns <= 0 {
			return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
		}
		if d.MinConns < 0 || d.MinConns > d.MaxConns {
			return fmt.Errorf("min_conns must be in 0..max_conns (got %d)", d.MinConns)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown driver %q (want %s or %s)", d.Driver, DriverPostgres, DriverMemory)
	}

	return nil
}

func (r *RateLimitConfig) validate() error {
	if !r.Enabled {
		return nil
	}
	if r.RequestsPerMin <= 0 {
		return fmt.Errorf("requests_per_min must be > 0 (got %d)", r.RequestsPerMin)
	}
	if r.Burst <= 0 {
		return fmt.Errorf("burst must be > 0 (got %d)", r.Burst)
	}
	if r.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup_interval must be > 0 (got %v)", r.CleanupInterval)
	}
	return nil
}
