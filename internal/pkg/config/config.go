package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/adiwira/tebengan/internal/pkg/models"
)

// InitConfig loads configuration from config.yaml with environment variable
// overrides. Nested keys map to env vars with underscores, e.g.
// server.port -> SERVER_PORT.
func InitConfig(configPath string) (*models.Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// Missing file is fine when everything comes from the environment
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &models.Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "tebengan")
	v.SetDefault("app.environment", "local")
	v.SetDefault("app.debug", true)

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 9991)
	v.SetDefault("server.shutdown_timeout", 30)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.idle_conns", 2)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("nsq.address", "localhost:4150")

	v.SetDefault("jwt.expiration", 60)
	v.SetDefault("jwt.issuer", "tebengan")

	v.SetDefault("logger.level", "info")

	v.SetDefault("maps.request_timeout", 10)

	v.SetDefault("location.throttle_window_seconds", 2)
	v.SetDefault("location.history_retention_days", 30)
}
