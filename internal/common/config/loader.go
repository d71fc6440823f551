// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like PLANNER_API_KEY
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	// Environment overlay: config.production.yaml etc.
	viper.SetConfigName("config." + env)
	if err := viper.MergeInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error merging %s config: %w", env, err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = env
	}

	return &cfg, nil
}

func loadEnvFile() {
	candidates := []string{
		".env",
		filepath.Join("..", "..", ".env"),
		filepath.Join("configs", ".env"),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func setDefaults() {
	viper.SetDefault("app.name", "cadence-workers")
	viper.SetDefault("app.version", "dev")

	viper.SetDefault("camunda.broker_address", "localhost:26500")
	viper.SetDefault("camunda.max_jobs_active", 10)
	viper.SetDefault("camunda.timeout", 60000)
	viper.SetDefault("camunda.request_timeout", 30000)

	viper.SetDefault("database.postgres.port", 5432)
	viper.SetDefault("database.postgres.max_connections", 20)
	viper.SetDefault("database.postgres.max_idle", 5)
	viper.SetDefault("database.postgres.sslmode", "disable")
	viper.SetDefault("database.redis.address", "localhost:6379")
	viper.SetDefault("database.elasticsearch.advisory_index", "cadence-advisories")

	viper.SetDefault("planner.timeout", 30000)
	viper.SetDefault("planner.max_tokens", 1024)
	viper.SetDefault("planner.temperature", 0.7)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")

	viper.SetDefault("ops.port", 9090)
}
