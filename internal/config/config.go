// Package config provides configuration management for the Match Edge
// analysis engine.
package config

// Config represents the complete application configuration
type Config struct {
	App        AppConfig        `mapstructure:"app" validate:"required"`
	Model      ModelConfig      `mapstructure:"model" validate:"required"`
	Simulation SimulationConfig `mapstructure:"simulation" validate:"required"`
	Value      ValueConfig      `mapstructure:"value" validate:"required"`
	Server     ServerConfig     `mapstructure:"server" validate:"required"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// ModelConfig represents scoreline model defaults. Requests can override
// every field.
type ModelConfig struct {
	DependenceRho           float64 `mapstructure:"dependence_rho" validate:"gte=-1,lte=1"`
	MaxGoals                int     `mapstructure:"max_goals" validate:"required,gte=0,lte=15"`
	UseDependenceCorrection bool    `mapstructure:"use_dependence_correction"`
	OverUnderThreshold      float64 `mapstructure:"over_under_threshold" validate:"required,gt=0"`
}

// SimulationConfig represents Monte Carlo defaults
type SimulationConfig struct {
	Samples int   `mapstructure:"samples" validate:"required,gt=0"`
	Seed    int64 `mapstructure:"seed"`
	Workers int   `mapstructure:"workers" validate:"gte=0"`
}

// ValueConfig represents staking and recommendation configuration
type ValueConfig struct {
	KellyFractionCap    float64 `mapstructure:"kelly_fraction_cap" validate:"required,gt=0,lte=1"`
	Bankroll            float64 `mapstructure:"bankroll" validate:"required,gt=0"`
	MinEdge             float64 `mapstructure:"min_edge" validate:"gte=0"`
	ConfidenceThreshold float64 `mapstructure:"confidence_threshold" validate:"required,gt=0,lt=1"`
}

// ServerConfig represents the HTTP API configuration
type ServerConfig struct {
	Port                int     `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadTimeoutSecs     int     `mapstructure:"read_timeout_seconds" validate:"required,gt=0"`
	WriteTimeoutSecs    int     `mapstructure:"write_timeout_seconds" validate:"required,gt=0"`
	ShutdownTimeoutSecs int     `mapstructure:"shutdown_timeout_seconds" validate:"required,gt=0"`
	RateLimitPerSec     float64 `mapstructure:"rate_limit_per_second" validate:"required,gt=0"`
	RateLimitBurst      int     `mapstructure:"rate_limit_burst" validate:"required,gt=0"`
	CacheTTLSeconds     int     `mapstructure:"cache_ttl_seconds" validate:"gte=0"`
}

// MetricsConfig represents metrics exposure configuration
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}
