package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	defaultMaxRequestBodySize   = "100KB"
	defaultBcryptCost           = 10
	defaultTokenLifetimeSeconds = 3600
	defaultSlowQueryThreshold   = 200 * time.Millisecond
	defaultPoolMonitorInterval  = 5 * time.Second

	minBcryptCost = 4
	maxBcryptCost = 31
)

// applyDefaults fills optional settings and rejects values the auth services cannot run with.
func (cfg *Config) applyDefaults() error {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if err := cfg.Auth.applyDefaults(); err != nil {
		return err
	}

	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{}
	}
	if cfg.Database.SlowQueryThreshold <= 0 {
		cfg.Database.SlowQueryThreshold = defaultSlowQueryThreshold
	}
	if cfg.Database.PoolMonitorInterval <= 0 {
		cfg.Database.PoolMonitorInterval = defaultPoolMonitorInterval
	}

	if cfg.Survey == nil {
		cfg.Survey = &SurveyConfig{}
	}
	cfg.Survey.RequiredQuestions = compact(cfg.Survey.RequiredQuestions)

	if cfg.Migration == nil {
		cfg.Migration = &MigrationConfig{}
	}
	if cfg.PubSub != nil {
		cfg.PubSub.Provider = strings.ToLower(strings.TrimSpace(cfg.PubSub.Provider))
	}

	return nil
}

func (c *AuthConfig) applyDefaults() error {
	if c.BcryptCost == 0 {
		c.BcryptCost = defaultBcryptCost
	}
	if c.BcryptCost < minBcryptCost || c.BcryptCost > maxBcryptCost {
		return errors.Errorf("auth.bcryptCost must be between %d and %d, got %d", minBcryptCost, maxBcryptCost, c.BcryptCost)
	}

	if c.TokenLifetimeSeconds == 0 {
		c.TokenLifetimeSeconds = defaultTokenLifetimeSeconds
	}
	if c.TokenLifetimeSeconds < 0 {
		return errors.Errorf("auth.tokenLifetimeSeconds must be positive, got %d", c.TokenLifetimeSeconds)
	}

	c.EmailScope = strings.ToLower(strings.TrimSpace(c.EmailScope))
	switch c.EmailScope {
	case "":
		c.EmailScope = EmailScopeVariant
	case EmailScopeVariant, EmailScopeGlobal:
	default:
		return errors.Errorf("auth.emailScope must be %q or %q, got %q", EmailScopeVariant, EmailScopeGlobal, c.EmailScope)
	}

	return nil
}

// compact trims ids and drops blanks, keeping order.
func compact(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}

	return out
}
