package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/ridelabs/drivescore/internal/pkg/models"
)

// InitConfig loads the application configuration from a yaml file, with
// environment variable overrides (ROADS_API_KEY overrides roads.api_key and
// so on). A missing config file is not an error; defaults plus environment
// cover the full surface.
func InitConfig(configPath string) (*models.Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, err
		}
	}

	cfg := &models.Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "drivescore")
	v.SetDefault("app.environment", "local")
	v.SetDefault("app.debug", true)

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.shutdown_timeout", 30)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("nsq.address", "localhost:4150")
	v.SetDefault("nsq.enabled", false)

	v.SetDefault("roads.base_url", "https://roads.googleapis.com")
	v.SetDefault("roads.api_key", "")
	v.SetDefault("roads.request_timeout_ms", 5000)
	v.SetDefault("roads.tolerance_meters", 10.0)
	v.SetDefault("roads.cache_ttl_ms", 30000)
	v.SetDefault("roads.cache_capacity", 4096)
	v.SetDefault("roads.cache_backend", "memory")
	v.SetDefault("roads.fallback_zoom", 15)

	v.SetDefault("scoring.points_per_meter", 5.0)
	v.SetDefault("scoring.speed_bonus_cap", 1.5)
	v.SetDefault("scoring.speed_bonus_divisor", 5.0)
	v.SetDefault("scoring.multiplier_max", 3.0)
	v.SetDefault("scoring.multiplier_step", 0.1)
	v.SetDefault("scoring.multiplier_ramp_seconds", 8.0)
	v.SetDefault("scoring.off_road_penalty_rate", 5.0)
	v.SetDefault("scoring.jitter_threshold_meters", 0.0001)
	v.SetDefault("scoring.session_idle_seconds", 1800)
	v.SetDefault("scoring.track_ttl_hours", 24)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.file_path", "")
}
