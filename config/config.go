package config

import (
	"time"

	"github.com/slighter12/go-lib/database/postgres"
)

// Email uniqueness scopes.
const (
	EmailScopeVariant = "variant"
	EmailScopeGlobal  = "global"
)

// Event publisher providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Database *DatabaseConfig `json:"database" yaml:"database"`

	Migration *MigrationConfig `json:"migration" yaml:"migration"`

	SecretKey struct {
		Session string `json:"session" yaml:"session"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Survey *SurveyConfig `json:"survey" yaml:"survey"`

	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AuthConfig is read once at startup and never mutated afterwards.
type AuthConfig struct {
	BcryptCost           int    `json:"bcryptCost" yaml:"bcryptCost"`
	TokenLifetimeSeconds int    `json:"tokenLifetimeSeconds" yaml:"tokenLifetimeSeconds"`
	EmailScope           string `json:"emailScope" yaml:"emailScope"`
	EmailCaseSensitive   bool   `json:"emailCaseSensitive" yaml:"emailCaseSensitive"`
}

// TokenLifetime returns the configured session token lifetime.
func (c *AuthConfig) TokenLifetime() time.Duration {
	return time.Duration(c.TokenLifetimeSeconds) * time.Second
}

// GlobalEmailScope reports whether an email may only be registered once across all principal kinds.
func (c *AuthConfig) GlobalEmailScope() bool {
	return c.EmailScope == EmailScopeGlobal
}

// DatabaseConfig tunes query logging and pool monitoring on top of the connection settings.
type DatabaseConfig struct {
	SlowQueryThreshold  time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
	PoolMonitorInterval time.Duration `json:"poolMonitorInterval" yaml:"poolMonitorInterval"`
}

type MigrationConfig struct {
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// SurveyConfig lists the questions that must be answered before a principal is validated.
type SurveyConfig struct {
	RequiredQuestions []string `json:"requiredQuestions" yaml:"requiredQuestions"`
}

// PubSubConfig selects where account events go. An empty provider disables publishing.
type PubSubConfig struct {
	Provider      string `json:"provider" yaml:"provider"`
	ProjectID     string `json:"projectId" yaml:"projectId"`
	TopicID       string `json:"topicId" yaml:"topicId"`
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// New loads config.yaml from the usual locations, overlays the environment and applies defaults.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv(osLookup)
	}

	return cfg, nil
}
