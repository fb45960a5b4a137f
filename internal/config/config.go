package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for our application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Advisor  AdvisorConfig  `mapstructure:"advisor"`
	Business BusinessConfig `mapstructure:"business"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Flush    FlushConfig    `mapstructure:"flush"`
}

type ServerConfig struct {
	Port         string `mapstructure:"SERVER_PORT"`
	Host         string `mapstructure:"SERVER_HOST"`
	Env          string `mapstructure:"ENV"`
	ReadTimeout  string `mapstructure:"SERVER_READ_TIMEOUT"`
	WriteTimeout string `mapstructure:"SERVER_WRITE_TIMEOUT"`
}

type RedisConfig struct {
	Host     string `mapstructure:"REDIS_HOST"`
	Port     string `mapstructure:"REDIS_PORT"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
	CacheTTL string `mapstructure:"CACHE_TTL"`
}

type AdvisorConfig struct {
	APIURL    string `mapstructure:"ADVISOR_API_URL"`
	APIKey    string `mapstructure:"ADVISOR_API_KEY"`
	Model     string `mapstructure:"ADVISOR_MODEL"`
	MaxTokens int    `mapstructure:"ADVISOR_MAX_TOKENS"`
	Timeout   string `mapstructure:"ADVISOR_TIMEOUT"`
}

type BusinessConfig struct {
	MaxPrincipal   float64 `mapstructure:"MAX_PRINCIPAL"`
	MaxRatePercent float64 `mapstructure:"MAX_RATE_PERCENT"`
	MaxTenureYears int     `mapstructure:"MAX_TENURE_YEARS"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"LOG_LEVEL"`
	Format string `mapstructure:"LOG_FORMAT"`
}

type FlushConfig struct {
	CronSpec string `mapstructure:"FLUSH_CRON_SPEC"`
	Timezone string `mapstructure:"FLUSH_TIMEZONE"`
}

// Load reads configuration from environment variables and files
func Load() (*Config, error) {
	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("SERVER_READ_TIMEOUT", "15s")
	viper.SetDefault("SERVER_WRITE_TIMEOUT", "15s")
	viper.SetDefault("REDIS_HOST", "")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CACHE_TTL", "24h")
	viper.SetDefault("ADVISOR_API_URL", "https://api.openai.com/v1/chat/completions")
	viper.SetDefault("ADVISOR_MODEL", "gpt-4o-mini")
	viper.SetDefault("ADVISOR_MAX_TOKENS", 300)
	viper.SetDefault("ADVISOR_TIMEOUT", "30s")
	viper.SetDefault("MAX_PRINCIPAL", 1_000_000_000.0)
	viper.SetDefault("MAX_RATE_PERCENT", 1000.0)
	viper.SetDefault("MAX_TENURE_YEARS", 50)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("FLUSH_CRON_SPEC", "0 0 0 * * *")
	viper.SetDefault("FLUSH_TIMEZONE", "UTC")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read from .env file (optional)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./deployments")

	// Don't fail if .env file doesn't exist
	_ = viper.ReadInConfig()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}

	if _, err := time.ParseDuration(c.Server.ReadTimeout); err != nil {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be a valid duration: %w", err)
	}

	if _, err := time.ParseDuration(c.Server.WriteTimeout); err != nil {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be a valid duration: %w", err)
	}

	if _, err := time.ParseDuration(c.Redis.CacheTTL); err != nil {
		return fmt.Errorf("CACHE_TTL must be a valid duration: %w", err)
	}

	if _, err := time.ParseDuration(c.Advisor.Timeout); err != nil {
		return fmt.Errorf("ADVISOR_TIMEOUT must be a valid duration: %w", err)
	}

	if c.Business.MaxPrincipal <= 0 {
		return fmt.Errorf("MAX_PRINCIPAL must be greater than 0")
	}

	if c.Business.MaxRatePercent <= 0 {
		return fmt.Errorf("MAX_RATE_PERCENT must be greater than 0")
	}

	if c.Business.MaxTenureYears <= 0 {
		return fmt.Errorf("MAX_TENURE_YEARS must be greater than 0")
	}

	if c.Flush.CronSpec == "" {
		return fmt.Errorf("FLUSH_CRON_SPEC is required")
	}

	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development" || c.Server.Env == "dev"
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production" || c.Server.Env == "prod"
}

// RedisEnabled reports whether a Redis-backed cache is configured.
func (c *Config) RedisEnabled() bool {
	return c.Redis.Host != ""
}

// GetCacheTTL returns the calculation cache TTL as duration
func (c *Config) GetCacheTTL() time.Duration {
	ttl, _ := time.ParseDuration(c.Redis.CacheTTL)
	return ttl
}

// GetAdvisorTimeout returns the advisory call timeout as duration
func (c *Config) GetAdvisorTimeout() time.Duration {
	timeout, _ := time.ParseDuration(c.Advisor.Timeout)
	return timeout
}

// GetReadTimeout returns the server read timeout as duration
func (c *Config) GetReadTimeout() time.Duration {
	timeout, _ := time.ParseDuration(c.Server.ReadTimeout)
	return timeout
}

// GetWriteTimeout returns the server write timeout as duration
func (c *Config) GetWriteTimeout() time.Duration {
	timeout, _ := time.ParseDuration(c.Server.WriteTimeout)
	return timeout
}
