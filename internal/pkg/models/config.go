package models

// Config holds the full application configuration
type Config struct {
	App     AppConfig     `json:"app" mapstructure:"app"`
	Server  ServerConfig  `json:"server" mapstructure:"server"`
	Redis   RedisConfig   `json:"redis" mapstructure:"redis"`
	NSQ     NSQConfig     `json:"nsq" mapstructure:"nsq"`
	Roads   RoadsConfig   `json:"roads" mapstructure:"roads"`
	Scoring ScoringConfig `json:"scoring" mapstructure:"scoring"`
	Logger  LoggerConfig  `json:"logger" mapstructure:"logger"`
	APIKey  APIKeyConfig  `json:"api_key" mapstructure:"api_key"`
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name        string `json:"name" mapstructure:"name"`
	Environment string `json:"environment" mapstructure:"environment"`
	Debug       bool   `json:"debug" mapstructure:"debug"`
	Version     string `json:"version" mapstructure:"version"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string `json:"host" mapstructure:"host"`
	Port            int    `json:"port" mapstructure:"port"`
	ReadTimeout     int    `json:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    int    `json:"write_timeout" mapstructure:"write_timeout"`
	ShutdownTimeout int    `json:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string `json:"host" mapstructure:"host"`
	Port     int    `json:"port" mapstructure:"port"`
	Password string `json:"password" mapstructure:"password"`
	DB       int    `json:"db" mapstructure:"db"`
	PoolSize int    `json:"pool_size" mapstructure:"pool_size"`
}

// NSQConfig holds NSQ producer configuration
type NSQConfig struct {
	Address string `json:"address" mapstructure:"address"`
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
}

// RoadsConfig holds the nearest-roads snapping service configuration.
// An empty APIKey puts the classifier permanently in fallback mode.
type RoadsConfig struct {
	BaseURL          string  `json:"base_url" mapstructure:"base_url"`
	APIKey           string  `json:"api_key" mapstructure:"api_key"`
	RequestTimeoutMs int     `json:"request_timeout_ms" mapstructure:"request_timeout_ms"`
	ToleranceMeters  float64 `json:"tolerance_meters" mapstructure:"tolerance_meters"`
	CacheTTLMs       int     `json:"cache_ttl_ms" mapstructure:"cache_ttl_ms"`
	CacheCapacity    int     `json:"cache_capacity" mapstructure:"cache_capacity"`
	CacheBackend     string  `json:"cache_backend" mapstructure:"cache_backend"` // "memory" or "redis"
	FallbackCenter   LatLng  `json:"fallback_center" mapstructure:"fallback_center"`
	FallbackZoom     int     `json:"fallback_zoom" mapstructure:"fallback_zoom"`
}

// LatLng is a bare coordinate pair used inside configuration
type LatLng struct {
	Latitude  float64 `json:"latitude" mapstructure:"latitude"`
	Longitude float64 `json:"longitude" mapstructure:"longitude"`
}

// ScoringConfig holds the tunable constants of the score engine
type ScoringConfig struct {
	PointsPerMeter        float64 `json:"points_per_meter" mapstructure:"points_per_meter"`
	SpeedBonusCap         float64 `json:"speed_bonus_cap" mapstructure:"speed_bonus_cap"`
	SpeedBonusDivisor     float64 `json:"speed_bonus_divisor" mapstructure:"speed_bonus_divisor"`
	MultiplierMax         float64 `json:"multiplier_max" mapstructure:"multiplier_max"`
	MultiplierStep        float64 `json:"multiplier_step" mapstructure:"multiplier_step"`
	MultiplierRampSeconds float64 `json:"multiplier_ramp_seconds" mapstructure:"multiplier_ramp_seconds"`
	OffRoadPenaltyRate    float64 `json:"off_road_penalty_rate" mapstructure:"off_road_penalty_rate"`
	JitterThresholdMeters float64 `json:"jitter_threshold_meters" mapstructure:"jitter_threshold_meters"`
	SessionIdleSeconds    int     `json:"session_idle_seconds" mapstructure:"session_idle_seconds"`
	TrackTTLHours         int     `json:"track_ttl_hours" mapstructure:"track_ttl_hours"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string `json:"level" mapstructure:"level"`
	FilePath string `json:"file_path" mapstructure:"file_path"`
}

// APIKeyConfig maps caller names to the API keys accepted on internal routes
type APIKeyConfig struct {
	Keys map[string]string `json:"keys" mapstructure:"keys"`
}
