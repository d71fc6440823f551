// internal/common/config/config.go
package config

import (
	"fmt"

	"cadence-workers/internal/common/errors"
)

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig               `mapstructure:"app"`
	Camunda  CamundaConfig           `mapstructure:"camunda"`
	Database DatabaseConfig          `mapstructure:"database"`
	Planner  PlannerConfig           `mapstructure:"planner"`
	Workers  map[string]WorkerConfig `mapstructure:"workers"`
	Logging  LoggingConfig           `mapstructure:"logging"`
	Ops      OpsConfig               `mapstructure:"ops"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type CamundaConfig struct {
	BrokerAddress  string `mapstructure:"broker_address"`
	MaxJobsActive  int    `mapstructure:"max_jobs_active"`
	Timeout        int    `mapstructure:"timeout"`         // milliseconds
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
}

type DatabaseConfig struct {
	Postgres      PostgresConfig      `mapstructure:"postgres"`
	Redis         RedisConfig         `mapstructure:"redis"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string.
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type ElasticsearchConfig struct {
	Addresses     []string `mapstructure:"addresses"`
	Username      string   `mapstructure:"username"`
	Password      string   `mapstructure:"password"`
	AdvisoryIndex string   `mapstructure:"advisory_index"`
}

// Enabled reports whether the advisory index is configured at all.
func (e ElasticsearchConfig) Enabled() bool {
	return len(e.Addresses) > 0
}

// PlannerConfig holds settings for the generative cadence planner API.
type PlannerConfig struct {
	BaseURL         string  `mapstructure:"base_url"`
	APIKey          string  `mapstructure:"api_key"`
	Timeout         int     `mapstructure:"timeout"` // milliseconds
	MaxTokens       int     `mapstructure:"max_tokens"`
	Temperature     float64 `mapstructure:"temperature"`
	TemplateCatalog string  `mapstructure:"template_catalog"` // path to the JSON template catalog, optional
}

// WorkerConfig holds the core settings applicable to every worker.
type WorkerConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxJobsActive int  `mapstructure:"max_jobs_active"`
	Timeout       int  `mapstructure:"timeout"` // milliseconds
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OpsConfig holds the metrics/pprof HTTP endpoint settings.
type OpsConfig struct {
	Port int `mapstructure:"port"`
}

// Validate fails fast on configuration the pipeline cannot run without.
// Called before any worker opens, so a broken deployment never accepts jobs.
func (c *Config) Validate() error {
	if c.Planner.BaseURL == "" {
		return errors.NewConfigurationMissingError("planner.base_url")
	}
	if c.Planner.APIKey == "" {
		return errors.NewConfigurationMissingError("planner.api_key")
	}
	if c.Database.Postgres.Host == "" || c.Database.Postgres.Database == "" {
		return errors.NewConfigurationMissingError("database.postgres")
	}
	if c.Camunda.BrokerAddress == "" {
		return errors.NewConfigurationMissingError("camunda.broker_address")
	}
	return nil
}
