package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the application-wide configuration tree.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Dataset DatasetConfig `mapstructure:"dataset"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Fetch   FetchConfig   `mapstructure:"fetch"`
	Log     LogConfig     `mapstructure:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port    int        `mapstructure:"port"`
	BaseURL string     `mapstructure:"base_url"`
	CORS    CORSConfig `mapstructure:"cors"`
}

// CORSConfig holds cross-origin settings.
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DatasetConfig describes the College Scorecard input file.
type DatasetConfig struct {
	Path       string        `mapstructure:"path"`
	RefreshTTL time.Duration `mapstructure:"refresh_ttl"` // re-read interval for the CSV
}

// RedisConfig holds Redis settings. Redis is optional: when unreachable the
// server falls back to in-process session storage and unthrottled fetch routes.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// FetchConfig controls the best-effort enrichment fetchers (reviews, campus
// visit events). Hosts are configurable so tests can point them at fixtures.
type FetchConfig struct {
	Timeout         time.Duration `mapstructure:"timeout"`
	ReviewTTL       time.Duration `mapstructure:"review_ttl"`
	EventsTTL       time.Duration `mapstructure:"events_ttl"`
	UnigoBaseURL    string        `mapstructure:"unigo_base_url"`
	CollegewiseBase string        `mapstructure:"collegewise_base_url"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json | console
}

// Load reads configuration from file and environment.
// Precedence: environment variables > config file > defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── defaults ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})

	v.SetDefault("dataset.path", "college_scorecard_data.csv")
	v.SetDefault("dataset.refresh_ttl", "24h")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("fetch.timeout", "10s")
	v.SetDefault("fetch.review_ttl", "6h")
	v.SetDefault("fetch.events_ttl", "24h")
	v.SetDefault("fetch.unigo_base_url", "https://www.unigo.com")
	v.SetDefault("fetch.collegewise_base_url", "https://collegewise.com")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// ── config file ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── environment ──
	v.SetEnvPrefix("EDUAID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		// No config file: defaults plus environment only.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks required settings.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config validation: server.port must be within 1-65535")
	}
	if c.Dataset.Path == "" {
		return fmt.Errorf("config validation: dataset.path must not be empty")
	}
	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("config validation: fetch.timeout must be positive")
	}
	return nil
}
